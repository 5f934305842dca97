package service

import (
	"fmt"
	"sync"
	"time"
)

// slotLocker serializes booking attempts per (location, date) bucket so the
// conflict check and insert behave as one step within this process. Mutexes
// are created on demand and kept for the process lifetime; the key space is
// bounded by the number of distinct location-days seen.
type slotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocker() *slotLocker {
	return &slotLocker{
		locks: map[string]*sync.Mutex{},
	}
}

// Lock acquires the bucket's mutex and returns its unlock func.
func (l *slotLocker) Lock(location string, date time.Time) func() {
	key := fmt.Sprintf("%s|%s", location, date.Format("2006-01-02"))

	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	l.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}
