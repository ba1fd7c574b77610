package anim

// Set holds one Handle per item ID.
type Set struct {
	handles map[string]*Handle
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{handles: make(map[string]*Handle)}
}

// Sync makes the set hold exactly the given IDs. New IDs get a resting
// handle, existing handles keep their progress and vanished IDs are dropped.
func (s *Set) Sync(ids []string) {
	keep := make(map[string]*Handle, len(ids))
	for _, id := range ids {
		if h, ok := s.handles[id]; ok {
			keep[id] = h
			continue
		}
		keep[id] = &Handle{}
	}
	s.handles = keep
}

// Get returns the handle for id, or nil if id is not in the set.
func (s *Set) Get(id string) *Handle {
	return s.handles[id]
}
