package ingest

import "sync"

// storeLocks hands out one mutex per store so concurrent uploads for the
// same store run one at a time while different stores proceed in parallel.
type storeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newStoreLocks() *storeLocks {
	return &storeLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *storeLocks) get(storeID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[storeID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[storeID] = lock
	}
	return lock
}
