package service

import "sync"

// accountLocks hands out one mutex per account id. Every read-modify-write
// sequence against a balance or feature flag must hold the account's lock;
// the original store relied on a single-threaded runtime for this.
type accountLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *accountLocks) get(userID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}
