package session

import "sync"

// keyLocker hands out one mutex per session id. Both store backends
// embed it so concurrent turns on the same session are applied one at a
// time instead of clobbering each other's slot state.
type keyLocker struct {
	mu sync.Map // session id -> *sync.Mutex
}

func (l *keyLocker) Lock(sessionID string) func() {
	v, _ := l.mu.LoadOrStore(sessionID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
