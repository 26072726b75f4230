package engine

import "sync"

// itineraryLocks serializes applies per itinerary identifier. Applies against
// different itineraries proceed in parallel; applies against the same one are
// totally ordered. Entries are reference-counted so the map does not grow
// with the number of itineraries ever touched.
type itineraryLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newItineraryLocks() *itineraryLocks {
	return &itineraryLocks{entries: make(map[string]*lockEntry)}
}

// Lock acquires the mutex for the given itinerary, creating it on first use.
func (l *itineraryLocks) Lock(itineraryID string) {
	l.mu.Lock()
	e, ok := l.entries[itineraryID]
	if !ok {
		e = &lockEntry{}
		l.entries[itineraryID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the itinerary mutex and drops the entry when no other
// goroutine is waiting on it.
func (l *itineraryLocks) Unlock(itineraryID string) {
	l.mu.Lock()
	e, ok := l.entries[itineraryID]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(l.entries, itineraryID)
		}
	}
	l.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
