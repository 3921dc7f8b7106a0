// Package scheduler implementa los trabajos diferidos de desmuteo.
// Cron cubre las tareas recurrentes del bot; esto cubre la otra mitad:
// un disparo único por (guild, usuario) que /unmute puede cancelar.
package scheduler

import (
	"sync"
	"time"
)

type jobKey struct {
	guildID string
	userID  string
}

// UnmuteJobs mantiene como máximo un trabajo pendiente por
// (guild, usuario). Programar de nuevo sobre la misma clave reemplaza
// el trabajo anterior.
type UnmuteJobs struct {
	mu     sync.Mutex
	timers map[jobKey]*time.Timer
}

func NewUnmuteJobs() *UnmuteJobs {
	return &UnmuteJobs{timers: make(map[jobKey]*time.Timer)}
}

// Schedule programa fn para ejecutarse tras d sin bloquear al llamador.
// El trabajo se da de baja solo antes de ejecutar fn.
func (j *UnmuteJobs) Schedule(guildID, userID string, d time.Duration, fn func()) {
	key := jobKey{guildID: guildID, userID: userID}

	j.mu.Lock()
	defer j.mu.Unlock()

	if prev, ok := j.timers[key]; ok {
		prev.Stop()
	}
	j.timers[key] = time.AfterFunc(d, func() {
		j.mu.Lock()
		delete(j.timers, key)
		j.mu.Unlock()
		fn()
	})
}

// Cancel anula el trabajo pendiente de un usuario si existe. Cancelar
// dos veces, o sin trabajo pendiente, es seguro y devuelve false.
func (j *UnmuteJobs) Cancel(guildID, userID string) bool {
	key := jobKey{guildID: guildID, userID: userID}

	j.mu.Lock()
	defer j.mu.Unlock()

	timer, ok := j.timers[key]
	if !ok {
		return false
	}
	delete(j.timers, key)
	return timer.Stop()
}
