package lottery

import "sync"

// eventLocks serializes lottery operations per event. The backing store
// commits each transition atomically but offers no read-then-write isolation
// across a draw's load/select/commit window, so concurrent draws on the same
// event must not interleave. Locks are never evicted; the map grows by one
// mutex per event ever operated on by this instance.
type eventLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEventLocks() *eventLocks {
	return &eventLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// get returns the mutex for an event, creating it on first use
func (l *eventLocks) get(eventID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[eventID] = lock
	}

	return lock
}
