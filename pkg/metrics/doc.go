// Package metrics exposes Prometheus instrumentation for the reconciler.
//
// A Collector counts repaint cycles and applied patch operations and
// observes repaint latency. It implements vdom.Recorder, so it can be
// handed directly to a Differ or a mount controller:
//
//	col := metrics.NewCollector(
//	    metrics.WithNamespace("myapp"),
//	)
//	ctrl, err := mount.Mount(root, view, state, mount.WithMetrics(col))
package metrics
