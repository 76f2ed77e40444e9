package vdom

import (
	"testing"

	"github.com/puerro-dev/puerro/pkg/dom"
)

func TestRenderNil(t *testing.T) {
	n := Render(nil)
	if n.Type != dom.TextNode || n.Text != "" {
		t.Errorf("nil renders as empty text, got %+v", n)
	}
}

func TestRenderText(t *testing.T) {
	n := Render(Text("hello"))
	if n.Type != dom.TextNode || n.Text != "hello" {
		t.Errorf("got %+v, want text hello", n)
	}
}

func TestRenderElement(t *testing.T) {
	n := Render(Div(ID("app"), Class("main")))

	if n.Type != dom.ElementNode || n.Tag != "div" {
		t.Fatalf("got %v <%s>, want element div", n.Type, n.Tag)
	}
	if v, _ := n.Attr("id"); v != "app" {
		t.Errorf("id = %q, want app", v)
	}
	if v, _ := n.Attr("class"); v != "main" {
		t.Errorf("class = %q, want main", v)
	}
}

func TestRenderChildrenInOrder(t *testing.T) {
	n := Render(Ul(Li("a"), Li("b"), Li("c")))

	if n.ChildCount() != 3 {
		t.Fatalf("ChildCount = %d, want 3", n.ChildCount())
	}
	if got := n.TextContent(); got != "abc" {
		t.Errorf("TextContent = %q, want abc", got)
	}
}

func TestRenderScalarStringified(t *testing.T) {
	n := Render(Input(Value(42), TabIndex(3)))

	if v, _ := n.Attr("value"); v != "42" {
		t.Errorf("value = %q, want 42", v)
	}
	if v, _ := n.Attr("tabindex"); v != "3" {
		t.Errorf("tabindex = %q, want 3", v)
	}
}

func TestRenderNilScalarSkipped(t *testing.T) {
	n := Render(Div(AttrOf("data-x", nil)))

	if _, ok := n.Attr("data-x"); ok {
		t.Error("nil scalar must not produce an attribute")
	}
}

func TestRenderBoolScalar(t *testing.T) {
	n := Render(Input(Disabled(true), Required(false)))

	if v, _ := n.Attr("disabled"); v != "true" {
		t.Errorf("disabled = %q, want true", v)
	}
	if v, _ := n.Attr("required"); v != "false" {
		t.Errorf("required = %q, want false", v)
	}
}

func TestRenderRegistersListeners(t *testing.T) {
	clicked := false
	n := Render(Button(OnClick(func(dom.Event) { clicked = true }), "go"))

	if n.ListenerCount("click") != 1 {
		t.Fatalf("ListenerCount(click) = %d, want 1", n.ListenerCount("click"))
	}
	if _, ok := n.Attr("click"); ok {
		t.Error("listener must not appear as an attribute")
	}

	n.DispatchEvent(dom.Event{Type: "click"})
	if !clicked {
		t.Error("listener did not fire")
	}
}

func TestRenderResultDetached(t *testing.T) {
	n := Render(Div(Span("x")))
	if n.Parent() != nil {
		t.Error("rendered root should be detached")
	}
	if n.ChildAt(0).Parent() != n {
		t.Error("children should be parented to the rendered node")
	}
}

func TestScalarString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"s", "s"},
		{true, "true"},
		{false, "false"},
		{7, "7"},
		{int64(9), "9"},
		{2.5, "2.5"},
	}
	for _, c := range cases {
		if got := ScalarString(c.in); got != c.want {
			t.Errorf("ScalarString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
