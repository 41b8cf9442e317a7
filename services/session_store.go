package services

import (
	"sync"
)

// SessionStore owns the live cart of every signed-in customer. Each mutation
// runs under the store lock, so one completes before the next is observed.
type SessionStore struct {
	mu    sync.Mutex
	ids   IDGenerator
	carts map[string]*Cart
}

func NewSessionStore(ids IDGenerator) *SessionStore {
	return &SessionStore{
		ids:   ids,
		carts: make(map[string]*Cart),
	}
}

// WithCart runs fn against the user's cart, creating an empty one on first use.
func (s *SessionStore) WithCart(userID string, fn func(*Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = NewCart(s.ids)
		s.carts[userID] = cart
	}
	return fn(cart)
}

// Drop destroys the user's cart, e.g. on logout.
func (s *SessionStore) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Active is the number of users currently holding a cart.
func (s *SessionStore) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}
