package storage

// GetWarns devuelve el contador de warns de un usuario (0 si no existe).
func (s *Store) GetWarns(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warns[userID]
}

// ResetWarns pone a cero el contador de warns del usuario.
func (s *Store) ResetWarns(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.warns[userID] = 0
	return s.persist(warnsFile, s.warns)
}
