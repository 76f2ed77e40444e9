package observable

import "sync"

// Snapshot is one immutable-by-convention state of an Object. Values may
// be nil: a removed key stays present with a nil value.
type Snapshot map[string]any

// clone returns a shallow copy of the snapshot.
func (s Snapshot) clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// ObjectListener is notified with the new and previous snapshot.
type ObjectListener func(newSnapshot, oldSnapshot Snapshot)

// KeyListener is notified with the new and previous value of one key.
type KeyListener func(newValue, oldValue any)

type objectEntry struct {
	id uint64
	fn ObjectListener
}

type keyEntry struct {
	id uint64
	fn KeyListener
}

// Object holds a keyed snapshot plus whole-object listeners and per-key
// subscribers. Every mutation computes a new snapshot; if it differs from
// the old one (shallow inequality) whole-object listeners fire with
// (new, old) and per-key subscribers fire only for keys whose value
// actually changed.
type Object struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []objectEntry
	keySubs   map[string][]keyEntry
	nextID    uint64
}

// NewObject creates an Object from an initial snapshot. A nil initial
// snapshot yields an empty one; the input is copied, never aliased.
func NewObject(initial Snapshot) *Object {
	return &Object{
		snapshot: initial.clone(),
		keySubs:  make(map[string][]keyEntry),
	}
}

// Get returns a copy of the current snapshot.
func (o *Object) Get() Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snapshot.clone()
}

// Value returns the current value of key and whether the key is present.
func (o *Object) Value(key string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.snapshot[key]
	return v, ok
}

// Set merges partial into a copy of the current snapshot. Keys not named
// in partial keep their values.
func (o *Object) Set(partial Snapshot) {
	o.mu.Lock()
	merged := o.snapshot.clone()
	for k, v := range partial {
		merged[k] = v
	}
	o.commit(merged)
}

// Push sets a single key.
func (o *Object) Push(key string, value any) {
	o.Set(Snapshot{key: value})
}

// Remove sets key to nil. The key stays present in the snapshot; removing
// an already-nil key is a no-op.
func (o *Object) Remove(key string) {
	o.Push(key, nil)
}

// Replace resets every existing key to nil, then merges whole in. Unlike
// Set, keys absent from whole do not keep their old values — they are
// cleared. Overlapping keys simply take their new value.
func (o *Object) Replace(whole Snapshot) {
	o.mu.Lock()
	merged := make(Snapshot, len(o.snapshot)+len(whole))
	for k := range o.snapshot {
		merged[k] = nil
	}
	for k, v := range whole {
		merged[k] = v
	}
	o.commit(merged)
}

// commit swaps in the merged snapshot and notifies. The caller must hold
// the write lock; commit releases it.
func (o *Object) commit(merged Snapshot) {
	old := o.snapshot

	// Collect keys whose value actually changed. Keys only in merged
	// compare against nil.
	var changedKeys []string
	for k, nv := range merged {
		if !defaultEquals(nv, old[k]) {
			changedKeys = append(changedKeys, k)
		}
	}
	if len(changedKeys) == 0 && len(merged) == len(old) {
		o.mu.Unlock()
		return
	}

	o.snapshot = merged

	listeners := make([]objectEntry, len(o.listeners))
	copy(listeners, o.listeners)

	type keyNotify struct {
		fn       KeyListener
		new, old any
	}
	var keyNotifies []keyNotify
	for _, k := range changedKeys {
		for _, e := range o.keySubs[k] {
			keyNotifies = append(keyNotifies, keyNotify{fn: e.fn, new: merged[k], old: old[k]})
		}
	}
	o.mu.Unlock()

	newCopy := merged.clone()
	oldCopy := old.clone()
	for _, l := range listeners {
		l.fn(newCopy, oldCopy)
	}
	for _, kn := range keyNotifies {
		kn.fn(kn.new, kn.old)
	}
}

// OnChange registers a whole-object listener and immediately invokes it
// once with (current, current). The returned function removes it.
func (o *Object) OnChange(fn ObjectListener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, objectEntry{id: id, fn: fn})
	current := o.snapshot.clone()
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

// Subscribe registers a per-key subscriber. It fires only when the key's
// value actually changes; there is no immediate invocation. The returned
// function removes it.
func (o *Object) Subscribe(key string, fn KeyListener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextID++
	id := o.nextID
	o.keySubs[key] = append(o.keySubs[key], keyEntry{id: id, fn: fn})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		subs := o.keySubs[key]
		for i, e := range subs {
			if e.id == id {
				o.keySubs[key] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}
