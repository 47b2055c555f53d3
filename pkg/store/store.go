package store

import "sync"

// Listener is notified with the new state after every dispatch.
type Listener func(State)

// Store holds the combined state and applies dispatches one at a time.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

// New returns a store starting from initial.
func New(initial State) *Store {
	return &Store{state: initial, listeners: make(map[int]Listener)}
}

// Dispatch reduces ev into the state and notifies listeners. Listeners run
// after the lock is released and may dispatch themselves.
func (s *Store) Dispatch(ev Event) {
	s.mu.Lock()
	s.state = Reduce(s.state, ev)
	state := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

// GetState returns a snapshot of the current state.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
