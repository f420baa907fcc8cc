// Package locks provides per-shop mutual exclusion for the booking
// path. Conflicts are scoped per shop, so bookings against different
// shops never contend. The lock backs up the database-level row lock
// for stores that cannot range-lock the appointment set.
package locks

import "sync"

type ShopLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewShopLocker() *ShopLocker {
	return &ShopLocker{locks: make(map[uint]*sync.Mutex)}
}

func (l *ShopLocker) get(shopID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[shopID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[shopID] = m
	}
	return m
}

func (l *ShopLocker) Lock(shopID uint) {
	l.get(shopID).Lock()
}

func (l *ShopLocker) Unlock(shopID uint) {
	l.get(shopID).Unlock()
}
