package mount

import "github.com/puerro-dev/puerro/pkg/observable"

// Observe subscribes the controller to an additional single-value
// container: every change repaints. Subscribing triggers one immediate
// repaint. The subscription is released on Unmount.
func Observe[T any](c *Controller, o *observable.Observable[T]) {
	unsub := o.Subscribe(func(_, _ T) {
		_ = c.repaint() // repaint logs its own failures
	})
	c.addUnsub(unsub)
}

// ObserveList subscribes the controller to a list container: adds,
// removes, and replaces all repaint. The subscriptions are released on
// Unmount.
func ObserveList[T comparable](c *Controller, l *observable.List[T]) {
	repaint := func() {
		_ = c.repaint() // repaint logs its own failures
	}
	c.addUnsub(l.OnAdd(func(T) { repaint() }))
	c.addUnsub(l.OnRemove(func(T) { repaint() }))
	c.addUnsub(l.OnReplace(func(T, T) { repaint() }))
}
