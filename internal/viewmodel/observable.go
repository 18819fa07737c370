package viewmodel

import "sync"

// Listener receives values published by a Value
type Listener[T any] func(T)

// Value is a minimal publish/subscribe holder for a single value
type Value[T any] struct {
	mu        sync.Mutex
	value     T
	nextID    int
	listeners map[int]Listener[T]
	order     []int
}

// NewValue creates a holder with an initial value
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		value:     initial,
		listeners: make(map[int]Listener[T]),
	}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores a value and notifies listeners in subscription order.
// Listeners run on the caller's goroutine, outside the lock.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	listeners := v.snapshot()
	v.mu.Unlock()

	for _, l := range listeners {
		l(value)
	}
}

// Subscribe registers fn, delivers the current value to it immediately and
// returns a function that removes the subscription. Calling it twice is a no-op.
func (v *Value[T]) Subscribe(fn Listener[T]) (unsubscribe func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.order = append(v.order, id)
	current := v.value
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.listeners, id)
			for i, existing := range v.order {
				if existing == id {
					v.order = append(v.order[:i], v.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Listeners returns the number of active subscriptions
func (v *Value[T]) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// snapshot copies the listener list; caller holds the lock
func (v *Value[T]) snapshot() []Listener[T] {
	out := make([]Listener[T], 0, len(v.order))
	for _, id := range v.order {
		out = append(out, v.listeners[id])
	}
	return out
}
