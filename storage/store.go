package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Nombres de los archivos de datos, uno por almacén.
const (
	levelsFile  = "levels.json"
	warnsFile   = "warnings.json"
	ticketsFile = "tickets.json"
	dropsFile   = "drops.json" // reservado: existe en disco pero ningún handler lo usa
)

// LevelRecord es el registro de niveles de un usuario tal como se
// serializa en levels.json.
type LevelRecord struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}

// LevelEntry es una fila del leaderboard.
type LevelEntry struct {
	UserID string
	Level  int
	XP     int
}

// Store es el repositorio respaldado por archivos JSON. Mantiene un
// espejo en memoria de cada almacén y reescribe el archivo completo en
// cada mutación. Todas las operaciones están protegidas por un mutex:
// dos handlers concurrentes no pueden perderse escrituras entre sí.
type Store struct {
	dir string

	mu      sync.RWMutex
	levels  map[string]LevelRecord
	warns   map[string]int
	tickets map[string]string

	xpPerMessage  int
	thresholdStep int
}

// New crea el directorio de datos si no existe, inicializa los archivos
// ausentes como objetos vacíos y carga los almacenes en memoria.
func New(dir string, xpPerMessage, thresholdStep int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de datos: %w", err)
	}

	s := &Store{
		dir:           dir,
		levels:        make(map[string]LevelRecord),
		warns:         make(map[string]int),
		tickets:       make(map[string]string),
		xpPerMessage:  xpPerMessage,
		thresholdStep: thresholdStep,
	}

	if err := loadFile(filepath.Join(dir, levelsFile), &s.levels); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, warnsFile), &s.warns); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, ticketsFile), &s.tickets); err != nil {
		return nil, err
	}
	// drops.json se crea por paridad con el resto del directorio, pero
	// ningún almacén en memoria lo respalda.
	var drops map[string]json.RawMessage
	if err := loadFile(filepath.Join(dir, dropsFile), &drops); err != nil {
		return nil, err
	}

	return s, nil
}

// loadFile lee un archivo JSON en dst; si no existe lo crea como "{}".
func loadFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			return fmt.Errorf("inicializando %s: %w", path, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("leyendo %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parseando %s: %w", path, err)
	}
	return nil
}

// persist reescribe un almacén completo en disco. Se llama con el mutex
// de escritura tomado.
func (s *Store) persist(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, file), data, 0o644)
}
