package service

import "sync"

// SaveGuard tracks which users currently have an entry save in flight.
// It is safe for concurrent use. The HTTP facade reads it to report the
// busy state, and the journal service uses it to refuse a second save for
// the same user while the classifier call of the first is still running.
type SaveGuard struct {
	mu    sync.Mutex
	inUse map[string]bool
}

// NewSaveGuard creates an empty guard.
func NewSaveGuard() *SaveGuard {
	return &SaveGuard{inUse: make(map[string]bool)}
}

// TryBegin marks a save in flight for the user. Returns false if one is
// already running, in which case End must not be called.
func (g *SaveGuard) TryBegin(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inUse[userID] {
		return false
	}
	g.inUse[userID] = true
	return true
}

// End clears the in-flight mark for the user.
func (g *SaveGuard) End(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inUse, userID)
}

// Saving reports whether the user has a save in flight.
func (g *SaveGuard) Saving(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inUse[userID]
}
