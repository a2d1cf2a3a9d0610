package anim

import "sort"

// Provider hands out animations by key. Every call returns a fresh copy so
// that no two entities share a playback cursor.
type Provider interface {
	Get(key Key) *Animation
}

// Library is the fixed lookup table built at asset-load time
type Library struct {
	table map[Key]*Animation
}

// NewLibrary creates an empty library
func NewLibrary() *Library {
	return &Library{table: make(map[Key]*Animation)}
}

// Register stores the template animation for key, replacing any previous one
func (l *Library) Register(key Key, a *Animation) {
	l.table[key] = a
}

// Has reports whether key is registered
func (l *Library) Has(key Key) bool {
	_, ok := l.table[key]
	return ok
}

// Get returns a fresh copy of the animation registered for key.
// Unknown keys yield an empty animation that is already finished.
func (l *Library) Get(key Key) *Animation {
	a, ok := l.table[key]
	if !ok {
		return New(nil, 1, false)
	}
	return a.Copy()
}

// Keys returns the registered keys in a stable order
func (l *Library) Keys() []Key {
	keys := make([]Key, 0, len(l.table))
	for k := range l.table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Entity != keys[j].Entity {
			return keys[i].Entity < keys[j].Entity
		}
		return keys[i].Action < keys[j].Action
	})
	return keys
}
