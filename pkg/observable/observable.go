package observable

import "sync"

// Listener is notified with the new and previous value after a change.
type Listener[T any] func(newValue, oldValue T)

// entry pairs a listener with a registration id so it can be removed.
type entry[T any] struct {
	id uint64
	fn Listener[T]
}

// Observable holds exactly one current value plus an ordered list of
// listeners. Setting an equal value is a no-op; otherwise the value is
// swapped first, then every listener is invoked in registration order with
// (new, old).
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	listeners []entry[T]
	nextID    uint64

	// equal is the equality function used to decide if the value changed.
	// If nil, uses default equality checking.
	equal func(T, T) bool
}

// New creates an observable with the given initial value.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// WithEquals returns the observable configured with a custom equality
// function. Useful for types where reflect.DeepEqual is too expensive or
// has the wrong semantics.
func (o *Observable[T]) WithEquals(fn func(T, T) bool) *Observable[T] {
	o.equal = fn
	return o
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set swaps in the new value and notifies all listeners with (new, old).
// Setting a value equal to the current one is a no-op: no notification.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	old := o.value
	o.value = value
	listeners := o.snapshotListeners()
	o.mu.Unlock()

	for _, l := range listeners {
		l.fn(value, old)
	}
}

// Update atomically derives the new value from the current one.
func (o *Observable[T]) Update(fn func(T) T) {
	o.mu.RLock()
	current := o.value
	o.mu.RUnlock()
	o.Set(fn(current))
}

// Subscribe registers a listener and immediately invokes it once with
// (current, current). The returned function removes the listener.
func (o *Observable[T]) Subscribe(fn Listener[T]) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, entry[T]{id: id, fn: fn})
	current := o.value
	o.mu.Unlock()

	fn(current, current)

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, e := range o.listeners {
			if e.id == id {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}

// snapshotListeners copies the listener list. Callers must hold the lock.
// Copy-before-notify keeps notification reentrant: a listener may
// subscribe or set without deadlocking.
func (o *Observable[T]) snapshotListeners() []entry[T] {
	out := make([]entry[T], len(o.listeners))
	copy(out, o.listeners)
	return out
}

// equals checks two values with the configured equality function.
func (o *Observable[T]) equals(a, b T) bool {
	if o.equal != nil {
		return o.equal(a, b)
	}
	return defaultEquals(any(a), any(b))
}
