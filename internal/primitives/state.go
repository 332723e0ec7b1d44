package primitives

import "sync"

// State is the mutable state slice owned by a single module.
// It is safe for concurrent use; the module tree itself is not.
type State struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewState wraps data without copying it. A nil map yields an empty state.
func NewState(data map[string]any) *State {
	if data == nil {
		data = make(map[string]any)
	}
	return &State{data: data}
}

// Get retrieves a value by key.
func (s *State) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores a value by key.
func (s *State) Set(key string, val any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = val
}

// Delete removes a key.
func (s *State) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len returns the number of keys.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Snapshot returns a shallow copy of the state data.
func (s *State) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(map[string]any, len(s.data))
	for k, v := range s.data {
		snap[k] = v
	}
	return snap
}

// Restore replaces the state data with a copy of snap.
func (s *State) Restore(snap map[string]any) {
	data := make(map[string]any, len(snap))
	for k, v := range snap {
		data[k] = v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}
