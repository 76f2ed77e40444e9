package mount

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/puerro-dev/puerro/internal/errors"
	"github.com/puerro-dev/puerro/pkg/dom"
	"github.com/puerro-dev/puerro/pkg/metrics"
	"github.com/puerro-dev/puerro/pkg/observable"
	"github.com/puerro-dev/puerro/pkg/vdom"
)

// View produces a virtual tree from the current state.
type View func(state *observable.Object) *vdom.VNode

// Controller holds the latest rendered virtual tree and repaints the live
// root whenever an observed container notifies. Repaints are synchronous:
// the triggering Set returns only after the live tree is up to date.
type Controller struct {
	root     *dom.Node
	view     View
	state    *observable.Object
	strategy Strategy
	recorder vdom.Recorder
	logger   *slog.Logger
	metrics  *metrics.Collector
	tracer   trace.Tracer

	// prev is the diff baseline. There is exactly one logical thread of
	// control; prev is only touched from repaint.
	prev *vdom.VNode

	mu     sync.Mutex // guards unsubs
	unsubs []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithStrategy selects the repaint strategy. Default: StrategyDiff.
func WithStrategy(s Strategy) Option {
	return func(c *Controller) {
		c.strategy = s
	}
}

// WithRecorder registers a patch recorder observing every applied
// mutation.
func WithRecorder(r vdom.Recorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithLogger sets the logger. Default: slog.Default() scoped to the mount
// component.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithMetrics registers a Prometheus collector observing repaints and
// patches.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithTracer enables an OpenTelemetry span per repaint cycle.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		c.tracer = t
	}
}

// Mount renders the initial tree into root and subscribes to state. Every
// subsequent state notification re-runs view and repaints via the
// configured strategy, keeping the previous virtual tree as the diff
// baseline.
func Mount(root *dom.Node, view View, state *observable.Object, opts ...Option) (*Controller, error) {
	if root == nil {
		return nil, errors.New("E020")
	}
	if view == nil {
		return nil, errors.New("E021")
	}
	if state == nil {
		state = observable.NewObject(nil)
	}

	c := &Controller{
		root:     root,
		view:     view,
		state:    state,
		strategy: StrategyDiff,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default().With("component", "mount")
	}

	// OnChange invokes immediately, which performs the initial render.
	var initErr error
	first := true
	unsub := state.OnChange(func(_, _ observable.Snapshot) {
		err := c.repaint()
		if first {
			initErr = err
			first = false
		}
	})
	if initErr != nil {
		unsub()
		return nil, initErr
	}
	c.unsubs = append(c.unsubs, unsub)

	return c, nil
}

// State returns the mounted state container.
func (c *Controller) State() *observable.Object {
	return c.state
}

// Root returns the live root node.
func (c *Controller) Root() *dom.Node {
	return c.root
}

// Tree returns the last rendered virtual tree.
func (c *Controller) Tree() *vdom.VNode {
	return c.prev
}

// Unmount removes all state subscriptions. The live tree is left as-is.
func (c *Controller) Unmount() {
	c.mu.Lock()
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// addUnsub records an extra subscription for Unmount to release.
func (c *Controller) addUnsub(u func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unsubs = append(c.unsubs, u)
}

// Repaint re-runs the view against current state and applies the result.
// It is called automatically on state notifications; calling it directly
// forces a repaint.
func (c *Controller) Repaint() error {
	return c.repaint()
}

func (c *Controller) repaint() error {
	// No lock here: notification is synchronous and a listener may set
	// state again mid-repaint. That nested change interleaves, exactly as
	// a re-entrant notification chain does.
	var span trace.Span
	if c.tracer != nil {
		_, span = c.tracer.Start(context.Background(), "puerro.repaint")
		defer span.End()
	}

	start := time.Now()
	log := &vdom.PatchLog{}
	rec := c.buildRecorder(log)

	next := c.view(c.state)
	err := c.strategy(c.root, next, c.prev, rec)
	c.prev = next

	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.ObserveRepaint(elapsed)
	}
	if span != nil {
		span.SetAttributes(
			attribute.Int("puerro.patches", log.Len()),
			attribute.Int64("puerro.duration_us", elapsed.Microseconds()),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	if err != nil {
		c.logger.Error("repaint failed", "error", err)
		return err
	}

	c.logger.Debug("repaint", "patches", log.Len(), "duration", elapsed)
	return nil
}

// buildRecorder fans patches out to the cycle log, the user recorder, and
// the metrics collector.
func (c *Controller) buildRecorder(log *vdom.PatchLog) vdom.Recorder {
	recs := multiRecorder{log}
	if c.recorder != nil {
		recs = append(recs, c.recorder)
	}
	if c.metrics != nil {
		recs = append(recs, c.metrics)
	}
	return recs
}

// multiRecorder fans one patch out to several recorders.
type multiRecorder []vdom.Recorder

// Record implements vdom.Recorder.
func (m multiRecorder) Record(p vdom.Patch) {
	for _, r := range m {
		r.Record(p)
	}
}
