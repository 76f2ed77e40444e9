package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/puerro-dev/puerro/pkg/vdom"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestObserveRepaint(t *testing.T) {
	c := NewCollector(WithRegistry(prometheus.NewRegistry()))

	c.ObserveRepaint(5 * time.Millisecond)
	c.ObserveRepaint(5 * time.Millisecond)

	if got := counterValue(t, c.repaints); got != 2 {
		t.Errorf("repaints = %v, want 2", got)
	}
	if got := histogramCount(t, c.repaintDuration); got != 2 {
		t.Errorf("duration samples = %v, want 2", got)
	}
}

func TestRecordPatches(t *testing.T) {
	c := NewCollector(WithRegistry(prometheus.NewRegistry()))

	c.Record(vdom.Patch{Op: vdom.PatchAppend, Tag: "div"})
	c.Record(vdom.Patch{Op: vdom.PatchAppend, Tag: "span"})
	c.Record(vdom.Patch{Op: vdom.PatchRemove, Tag: "div"})

	if got := counterValue(t, c.patches.WithLabelValues("Append")); got != 2 {
		t.Errorf("Append = %v, want 2", got)
	}
	if got := counterValue(t, c.patches.WithLabelValues("Remove")); got != 1 {
		t.Errorf("Remove = %v, want 1", got)
	}
}

func TestNamespaceOption(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(WithRegistry(reg), WithNamespace("custom"), WithSubsystem("ui"))
	c.ObserveRepaint(time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "custom_ui_repaints_total" {
			found = true
		}
	}
	if !found {
		t.Error("custom_ui_repaints_total not registered")
	}
}

func TestSeparateRegistries(t *testing.T) {
	// Two collectors with private registries must not collide.
	a := NewCollector(WithRegistry(prometheus.NewRegistry()))
	b := NewCollector(WithRegistry(prometheus.NewRegistry()))
	a.ObserveRepaint(time.Millisecond)
	if got := counterValue(t, b.repaints); got != 0 {
		t.Errorf("b.repaints = %v, want 0", got)
	}
}
