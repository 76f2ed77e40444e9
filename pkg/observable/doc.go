// Package observable provides the state containers that drive re-renders.
//
// Three containers cover the common shapes of UI state:
//
//   - Observable[T] holds a single value and notifies listeners with
//     (new, old) when it changes.
//   - Object holds a keyed snapshot with whole-object listeners and
//     per-key subscribers.
//   - List wraps a slice with independent add/remove/replace listener
//     groups.
//
// Notification is synchronous: all listeners run, in registration order,
// before the triggering Set returns. A listener that mutates the same
// container during notification interleaves rather than queues — there is
// no batching and no scheduler.
//
// # Quick Start
//
//	count := observable.New(0)
//	unsub := count.Subscribe(func(n, old int) { fmt.Println(old, "->", n) })
//	count.Set(1) // prints "0 -> 1"
//	unsub()
package observable
