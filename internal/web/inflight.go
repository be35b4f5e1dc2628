package web

import "sync"

// inflight refuses a second action on the same key while the first is
// still running. Keys combine the session with the action target.
type inflight struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func newInflight() *inflight {
	return &inflight{busy: make(map[string]struct{})}
}

func (f *inflight) TryLock(key string) (func(), bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.busy[key]; ok {
		return nil, false
	}
	f.busy[key] = struct{}{}
	return func() {
		f.mu.Lock()
		delete(f.busy, key)
		f.mu.Unlock()
	}, true
}
