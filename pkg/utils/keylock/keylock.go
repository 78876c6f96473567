package keylock

import "sync"

// Map is a set of mutexes keyed by K. Lock entries are created on demand and dropped once no
// goroutine holds or waits for them.
type Map[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New[K comparable]() *Map[K] {
	return &Map[K]{locks: make(map[K]*entry)}
}

// Lock blocks until the mutex of key is held and returns the function releasing it.
func (x *Map[K]) Lock(key K) func() {
	x.mu.Lock()
	e, ok := x.locks[key]
	if !ok {
		e = &entry{}
		x.locks[key] = e
	}
	e.refs++
	x.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		x.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(x.locks, key)
		}
		x.mu.Unlock()
	}
}

// Len returns the number of keys currently locked or waited on.
func (x *Map[K]) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.locks)
}
