package commands

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrDropClaimed indica que el drop ya tiene ganador.
	ErrDropClaimed = errors.New("drop ya reclamado")
	// ErrDropUnknown indica un control de drop que el proceso no conoce
	// (por ejemplo, un drop anterior a un reinicio).
	ErrDropUnknown = errors.New("drop desconocido")
)

type dropState struct {
	Prize     string
	Claimed   bool
	ClaimedBy string
}

// OpenDrop describe un drop todavía sin reclamar.
type OpenDrop struct {
	MessageID string
	Prize     string
}

// DropRegistry guarda el estado de cada drop por ID de mensaje. Vive
// solo en memoria: un reinicio deja huérfanos los botones ya publicados.
type DropRegistry struct {
	mu    sync.Mutex
	drops map[string]*dropState
}

func NewDropRegistry() *DropRegistry {
	return &DropRegistry{drops: make(map[string]*dropState)}
}

// Open registra un drop recién publicado en estado abierto.
func (r *DropRegistry) Open(messageID, prize string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drops[messageID] = &dropState{Prize: prize}
}

// Claim intenta reclamar un drop. Solo el primer reclamo gana; los
// siguientes reciben ErrDropClaimed y no cambian el ganador registrado.
func (r *DropRegistry) Claim(messageID, userID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drop, ok := r.drops[messageID]
	if !ok {
		return "", ErrDropUnknown
	}
	if drop.Claimed {
		return "", ErrDropClaimed
	}
	drop.Claimed = true
	drop.ClaimedBy = userID
	return drop.Prize, nil
}

// ClaimedBy devuelve quién reclamó un drop, si alguien lo hizo.
func (r *DropRegistry) ClaimedBy(messageID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drop, ok := r.drops[messageID]
	if !ok || !drop.Claimed {
		return "", false
	}
	return drop.ClaimedBy, true
}

// OpenDrops lista los drops sin reclamar, en orden estable.
func (r *DropRegistry) OpenDrops() []OpenDrop {
	r.mu.Lock()
	defer r.mu.Unlock()

	open := make([]OpenDrop, 0)
	for id, drop := range r.drops {
		if !drop.Claimed {
			open = append(open, OpenDrop{MessageID: id, Prize: drop.Prize})
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].MessageID < open[j].MessageID })
	return open
}
