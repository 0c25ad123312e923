package usecase

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRand lets concurrent webhook events share one *rand.Rand.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(src rand.Source) *lockedRand {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &lockedRand{rnd: rand.New(src)}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *lockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rnd.Shuffle(n, swap)
}

// userLocks serializes read-then-write sequences for the same user.
type userLocks struct {
	locks sync.Map
}

func (l *userLocks) lock(userID string) func() {
	m, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
