package storage

import "sort"

// GetLevel devuelve (nivel, xp) de un usuario. Es una consulta pura:
// un usuario desconocido devuelve (0, 0) sin crear registro.
func (s *Store) GetLevel(userID string) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec := s.levels[userID]
	return rec.Level, rec.XP
}

// AddMessageXP acredita el XP de un mensaje al usuario, creando el
// registro si es su primer mensaje. Sube como máximo un nivel por
// mensaje aunque el XP cruce varios umbrales de golpe; el umbral para
// pasar del nivel L al L+1 es (L+1)*thresholdStep.
func (s *Store) AddMessageXP(userID string) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.levels[userID]
	rec.XP += s.xpPerMessage

	leveledUp := false
	if rec.XP >= (rec.Level+1)*s.thresholdStep {
		rec.Level++
		leveledUp = true
	}
	s.levels[userID] = rec

	if err := s.persist(levelsFile, s.levels); err != nil {
		return false, 0, err
	}
	return leveledUp, rec.Level, nil
}

// SetLevel fija el nivel de un usuario sin pasar por la acumulación
// normal: xp pasa a ser level*thresholdStep incondicionalmente.
func (s *Store) SetLevel(userID string, level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.levels[userID] = LevelRecord{XP: level * s.thresholdStep, Level: level}
	return s.persist(levelsFile, s.levels)
}

// Leaderboard devuelve como máximo n entradas ordenadas por nivel
// descendente. Los empates mantienen un orden estable (por ID de
// usuario) para que dos lecturas seguidas no bailen posiciones.
func (s *Store) Leaderboard(n int) []LevelEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]LevelEntry, 0, len(s.levels))
	for uid, rec := range s.levels {
		entries = append(entries, LevelEntry{UserID: uid, Level: rec.Level, XP: rec.XP})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].UserID < entries[j].UserID })
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Level > entries[j].Level })

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
