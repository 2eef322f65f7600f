package namelock

import "sync"

// Registry hands out one mutex per scan name. Two concurrent triggers for
// the same name would otherwise race on the delete-then-recreate step of
// target provisioning.
type Registry struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Registry {
	return &Registry{locks: make(map[string]*sync.Mutex)}
}

// Acquire blocks until the lock for name is held and returns the release
// function.
func (r *Registry) Acquire(name string) func() {
	r.mu.Lock()
	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
