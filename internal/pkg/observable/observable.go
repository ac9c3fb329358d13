// Package observable holds a value and notifies subscribers after every change.
package observable

import "sync"

type Value[T any] struct {
	mu          sync.RWMutex
	current     T
	nextID      int
	subscribers map[int]func(T)
	order       []int
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current:     initial,
		subscribers: make(map[int]func(T)),
	}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

func (v *Value[T]) Set(next T) {
	v.Update(func(T) T { return next })
}

// Update applies fn under the write lock, then notifies with the new value.
// Subscribers run outside the lock, in subscription order.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	v.current = fn(v.current)
	next := v.current
	listeners := v.snapshotLocked()
	v.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe registers fn and returns a func that removes it. fn is not
// called with the current value.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn
	v.order = append(v.order, id)
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subscribers, id)
			for i, oid := range v.order {
				if oid == id {
					v.order = append(v.order[:i], v.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (v *Value[T]) snapshotLocked() []func(T) {
	out := make([]func(T), 0, len(v.order))
	for _, id := range v.order {
		out = append(out, v.subscribers[id])
	}
	return out
}
