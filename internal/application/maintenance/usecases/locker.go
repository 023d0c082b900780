package usecases

import "sync"

// RequestLocker serializes lifecycle commands per request id. Entries are
// reference counted and removed once the last holder or waiter releases them.
type RequestLocker struct {
	mu    sync.Mutex
	locks map[uint]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewRequestLocker() *RequestLocker {
	return &RequestLocker{locks: make(map[uint]*lockEntry)}
}

// Lock blocks until id is free and returns the matching unlock function.
func (l *RequestLocker) Lock(id uint) (unlock func()) {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &lockEntry{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mu.Unlock()

			l.mu.Lock()
			entry.refs--
			if entry.refs == 0 {
				delete(l.locks, id)
			}
			l.mu.Unlock()
		})
	}
}

func (l *RequestLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
