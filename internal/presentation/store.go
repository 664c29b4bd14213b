// Package presentation owns the committed article settings and exposes them
// as named presentation variables.
package presentation

import (
	"github.com/zam-dot/articleparams/internal/appearance"
)

// Store holds the committed settings and notifies subscribers whenever the
// value is replaced. It is used from the Bubble Tea update loop only and is
// not safe for concurrent use.
type Store struct {
	current     appearance.Settings
	subscribers map[int]func(appearance.Settings)
	nextID      int
}

// NewStore creates a store initialised to the global default settings.
func NewStore() *Store {
	return &Store{
		current:     appearance.Default(),
		subscribers: make(map[int]func(appearance.Settings)),
	}
}

// Current returns the committed settings.
func (s *Store) Current() appearance.Settings {
	return s.current
}

// Commit replaces the committed settings wholesale and notifies subscribers.
func (s *Store) Commit(next appearance.Settings) {
	s.current = next
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			fn(next)
		}
	}
}

// Subscribe registers fn to run after every Commit. The returned func removes it.
func (s *Store) Subscribe(fn func(appearance.Settings)) func() {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}
