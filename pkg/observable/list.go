package observable

import "sync"

// ItemListener is notified with the affected item.
type ItemListener[T any] func(item T)

// ReplaceListener is notified with the new and the replaced item.
type ReplaceListener[T any] func(newItem, oldItem T)

type itemEntry[T any] struct {
	id uint64
	fn ItemListener[T]
}

type replaceEntry[T any] struct {
	id uint64
	fn ReplaceListener[T]
}

// List wraps an externally supplied sequence and exposes add, remove, and
// replace with an independent listener group per operation. Membership is
// by value equality; there is no deduplication.
type List[T comparable] struct {
	mu        sync.RWMutex
	items     []T
	onAdd     []itemEntry[T]
	onRemove  []itemEntry[T]
	onReplace []replaceEntry[T]
	nextID    uint64
}

// NewList creates a List backed by the given sequence. The slice is
// adopted as the backing store, not copied.
func NewList[T comparable](backing []T) *List[T] {
	return &List[T]{items: backing}
}

// Count returns the number of items.
func (l *List[T]) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Items returns a copy of the backing sequence.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the item at index i and whether i is in range.
func (l *List[T]) Get(i int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// IndexOf returns the index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.indexOf(item)
}

// indexOf is IndexOf without locking. Callers must hold the lock.
func (l *List[T]) indexOf(item T) int {
	for i, it := range l.items {
		if it == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item is in the list.
func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// Add appends item and notifies the add listener group.
func (l *List[T]) Add(item T) {
	l.mu.Lock()
	l.items = append(l.items, item)
	listeners := make([]itemEntry[T], len(l.onAdd))
	copy(listeners, l.onAdd)
	l.mu.Unlock()

	for _, e := range listeners {
		e.fn(item)
	}
}

// Remove removes the first occurrence of item and notifies the remove
// listener group. If the item is not present the sequence is untouched but
// the listeners still fire.
func (l *List[T]) Remove(item T) {
	l.mu.Lock()
	if i := l.indexOf(item); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
	listeners := make([]itemEntry[T], len(l.onRemove))
	copy(listeners, l.onRemove)
	l.mu.Unlock()

	for _, e := range listeners {
		e.fn(item)
	}
}

// Replace swaps the first occurrence of oldItem for newItem and notifies
// the replace listener group with (new, old). If oldItem is not present
// the sequence is untouched but the listeners still fire.
func (l *List[T]) Replace(oldItem, newItem T) {
	l.mu.Lock()
	if i := l.indexOf(oldItem); i >= 0 {
		l.items[i] = newItem
	}
	listeners := make([]replaceEntry[T], len(l.onReplace))
	copy(listeners, l.onReplace)
	l.mu.Unlock()

	for _, e := range listeners {
		e.fn(newItem, oldItem)
	}
}

// OnAdd registers an add listener. The returned function removes it.
func (l *List[T]) OnAdd(fn ItemListener[T]) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.onAdd = append(l.onAdd, itemEntry[T]{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.onAdd {
			if e.id == id {
				l.onAdd = append(l.onAdd[:i], l.onAdd[i+1:]...)
				return
			}
		}
	}
}

// OnRemove registers a remove listener. The returned function removes it.
func (l *List[T]) OnRemove(fn ItemListener[T]) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.onRemove = append(l.onRemove, itemEntry[T]{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.onRemove {
			if e.id == id {
				l.onRemove = append(l.onRemove[:i], l.onRemove[i+1:]...)
				return
			}
		}
	}
}

// OnReplace registers a replace listener. The returned function removes it.
func (l *List[T]) OnReplace(fn ReplaceListener[T]) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.onReplace = append(l.onReplace, replaceEntry[T]{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.onReplace {
			if e.id == id {
				l.onReplace = append(l.onReplace[:i], l.onReplace[i+1:]...)
				return
			}
		}
	}
}
