package storage

// SetTicket registra el canal del ticket abierto de un usuario y
// devuelve el canal anterior si ya había uno (un ticket abierto por
// usuario: el segundo pisa al primero sin cerrar su canal).
func (s *Store) SetTicket(userID, channelID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.tickets[userID]
	s.tickets[userID] = channelID
	if err := s.persist(ticketsFile, s.tickets); err != nil {
		return previous, err
	}
	return previous, nil
}

// GetTicket devuelve el canal del ticket abierto de un usuario.
func (s *Store) GetTicket(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.tickets[userID]
	return ch, ok
}

// TicketOwner busca qué usuario abrió el ticket de un canal dado.
func (s *Store) TicketOwner(channelID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for uid, ch := range s.tickets {
		if ch == channelID {
			return uid, true
		}
	}
	return "", false
}

// DeleteTicket elimina el registro del ticket de un usuario. Borrar un
// usuario sin ticket no es un error.
func (s *Store) DeleteTicket(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tickets, userID)
	return s.persist(ticketsFile, s.tickets)
}
