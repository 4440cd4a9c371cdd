package core

import "sync"

// lockTable serializes follow-up turns per submission id, so two concurrent
// turns against the same submission cannot read the same history before
// either appends. Different submissions proceed without coordination.
// Entries are never evicted; one mutex per submission ever conversed with
// is an acceptable footprint for this service.
type lockTable struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[int64]*sync.Mutex)}
}

func (t *lockTable) lock(id int64) *sync.Mutex {
	t.mu.Lock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	t.mu.Unlock()
	l.Lock()
	return l
}
