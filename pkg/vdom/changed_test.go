package vdom

import (
	"testing"

	"github.com/puerro-dev/puerro/pkg/dom"
)

func TestChangedBothNil(t *testing.T) {
	if Changed(nil, nil) {
		t.Error("two nils should not differ")
	}
}

func TestChangedOneNil(t *testing.T) {
	n := Div()
	if !Changed(nil, n) {
		t.Error("nil vs node should differ")
	}
	if !Changed(n, nil) {
		t.Error("node vs nil should differ")
	}
}

func TestChangedKindMismatch(t *testing.T) {
	if !Changed(Text("x"), Div()) {
		t.Error("text vs element should differ")
	}
}

func TestChangedText(t *testing.T) {
	if !Changed(Text("a"), Text("b")) {
		t.Error("different text should differ")
	}
	if Changed(Text("a"), Text("a")) {
		t.Error("equal text should not differ")
	}
}

func TestChangedTag(t *testing.T) {
	if !Changed(Div(), Span()) {
		t.Error("different tags should differ")
	}
}

func TestChangedAttrValue(t *testing.T) {
	if !Changed(Div(ID("a")), Div(ID("b"))) {
		t.Error("different attribute value should differ")
	}
	if Changed(Div(ID("a")), Div(ID("a"))) {
		t.Error("equal attributes should not differ")
	}
}

func TestChangedAttrCount(t *testing.T) {
	if !Changed(Div(ID("a")), Div(ID("a"), Class("x"))) {
		t.Error("extra attribute should differ")
	}
	if !Changed(Div(ID("a"), Class("x")), Div(ID("a"))) {
		t.Error("missing attribute should differ")
	}
}

func TestChangedAttrOrderIrrelevant(t *testing.T) {
	a := Div(ID("a"), Class("x"))
	b := Div(Class("x"), ID("a"))
	if Changed(a, b) {
		t.Error("attribute order must not affect the result")
	}
}

func TestChangedSymmetric(t *testing.T) {
	pairs := [][2]*VNode{
		{Div(ID("a")), Div(ID("b"))},
		{Div(ID("a")), Div(ID("a"))},
		{Text("x"), Div()},
		{nil, Div()},
	}
	for i, p := range pairs {
		if Changed(p[0], p[1]) != Changed(p[1], p[0]) {
			t.Errorf("pair %d: Changed is not symmetric", i)
		}
	}
}

func TestChangedScalarStringified(t *testing.T) {
	// 1 and "1" stringify identically, so they compare equal.
	if Changed(Div(Value(1)), Div(Value("1"))) {
		t.Error("stringified-equal scalars should not differ")
	}
}

func TestChangedNilScalar(t *testing.T) {
	if Changed(Div(AttrOf("x", nil)), Div(AttrOf("x", nil))) {
		t.Error("two nil scalars should not differ")
	}
	if !Changed(Div(AttrOf("x", nil)), Div(AttrOf("x", "v"))) {
		t.Error("nil vs non-nil scalar should differ")
	}
}

func TestChangedListenersUnderSameKeyEqual(t *testing.T) {
	a := Button(OnClick(func(dom.Event) {}))
	b := Button(OnClick(func(dom.Event) {}))
	if Changed(a, b) {
		t.Error("listeners under the same key are treated as equal")
	}
}

func TestChangedKindFlip(t *testing.T) {
	a := Div(AttrOf("click", "literal"))
	b := Div(On("click", func(dom.Event) {}))
	if !Changed(a, b) {
		t.Error("scalar vs listener under the same key should differ")
	}
}

func TestChangedIgnoresChildren(t *testing.T) {
	// Child differences are the differ's job, not Changed's.
	a := Div(Span("x"))
	b := Div(Span("y"), Span("z"))
	if Changed(a, b) {
		t.Error("children must not affect Changed")
	}
}
