package vdom

import (
	stderrors "errors"
	"testing"

	perrors "github.com/puerro-dev/puerro/internal/errors"
	"github.com/puerro-dev/puerro/pkg/dom"
)

// mountInto renders next into parent and returns it as the diff baseline.
func mountInto(t *testing.T, parent *dom.Node, next *VNode) *VNode {
	t.Helper()
	if err := Diff(parent, next, nil, 0); err != nil {
		t.Fatalf("initial diff failed: %v", err)
	}
	return next
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var perr *perrors.PuerroError
	if !stderrors.As(err, &perr) {
		t.Fatalf("error %v is not structured", err)
	}
	return perr.Code
}

func TestDiffNilParent(t *testing.T) {
	err := Diff(nil, Div(), nil, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := errCode(t, err); code != "E002" {
		t.Errorf("code = %s, want E002", code)
	}
}

func TestDiffTextParent(t *testing.T) {
	err := Diff(dom.NewText("x"), Div(), nil, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := errCode(t, err); code != "E003" {
		t.Errorf("code = %s, want E003", code)
	}
}

func TestDiffBothNil(t *testing.T) {
	parent := dom.NewElement("body")
	if err := Diff(parent, nil, nil, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if parent.ChildCount() != 0 {
		t.Error("nothing should be mutated")
	}
}

func TestDiffInitialAppend(t *testing.T) {
	parent := dom.NewElement("body")
	mountInto(t, parent, Div(ID("app"), "hello"))

	if parent.ChildCount() != 1 {
		t.Fatalf("ChildCount = %d, want 1", parent.ChildCount())
	}
	live := parent.ChildAt(0)
	if live.Tag != "div" {
		t.Errorf("tag = %q, want div", live.Tag)
	}
	if got := live.TextContent(); got != "hello" {
		t.Errorf("TextContent = %q, want hello", got)
	}
}

func TestDiffAppendIgnoresIndex(t *testing.T) {
	// New nodes append to the end regardless of the requested slot.
	parent := dom.NewElement("body")
	parent.AppendChild(dom.NewText("existing"))

	if err := Diff(parent, Div(), nil, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if parent.ChildCount() != 2 {
		t.Fatalf("ChildCount = %d, want 2", parent.ChildCount())
	}
	if parent.ChildAt(1).Tag != "div" {
		t.Error("new node should append as the last child")
	}
}

func TestDiffRemove(t *testing.T) {
	parent := dom.NewElement("body")
	prev := mountInto(t, parent, Div())

	if err := Diff(parent, nil, prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if parent.ChildCount() != 0 {
		t.Errorf("ChildCount = %d, want 0", parent.ChildCount())
	}
}

func TestDiffRemoveOutOfRange(t *testing.T) {
	parent := dom.NewElement("body")
	err := Diff(parent, nil, Div(), 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := errCode(t, err); code != "E001" {
		t.Errorf("code = %s, want E001", code)
	}
}

func TestDiffReplaceOnChange(t *testing.T) {
	parent := dom.NewElement("body")
	prev := mountInto(t, parent, Div(ID("a")))

	if err := Diff(parent, Div(ID("b")), prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	live := parent.ChildAt(0)
	if v, _ := live.Attr("id"); v != "b" {
		t.Errorf("id = %q, want b", v)
	}
}

func TestDiffReplaceOutOfRange(t *testing.T) {
	parent := dom.NewElement("body")
	err := Diff(parent, Div(ID("b")), Div(ID("a")), 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if code := errCode(t, err); code != "E001" {
		t.Errorf("code = %s, want E001", code)
	}
}

func TestDiffReplaceIsFullSubtree(t *testing.T) {
	// A changed parent re-renders the whole subtree, even unchanged children.
	parent := dom.NewElement("body")
	prev := mountInto(t, parent, Div(ID("a"), Span("keep")))
	oldSpan := parent.ChildAt(0).ChildAt(0)

	if err := Diff(parent, Div(ID("b"), Span("keep")), prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	newSpan := parent.ChildAt(0).ChildAt(0)
	if newSpan == oldSpan {
		t.Error("replacement must render a fresh subtree")
	}
	if got := newSpan.TextContent(); got != "keep" {
		t.Errorf("TextContent = %q, want keep", got)
	}
}

func TestDiffIdenticalTreeNoPatches(t *testing.T) {
	build := func() *VNode {
		return Div(ID("app"),
			H1("Title"),
			Ul(Li("a"), Li("b")),
		)
	}

	parent := dom.NewElement("body")
	prev := mountInto(t, parent, build())

	log := &PatchLog{}
	d := &Differ{Recorder: log}
	if err := d.Diff(parent, build(), prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if log.Len() != 0 {
		t.Errorf("got %d patches for an identical tree, want 0: %v", log.Len(), log.Patches)
	}
}

func TestDiffListAppendKeepsExistingItems(t *testing.T) {
	parent := dom.NewElement("body")
	prev := mountInto(t, parent, Ul(Li("a"), Li("b")))

	liveUl := parent.ChildAt(0)
	liveA := liveUl.ChildAt(0)
	liveB := liveUl.ChildAt(1)

	log := &PatchLog{}
	d := &Differ{Recorder: log}
	next := Ul(Li("a"), Li("b"), Li("c"))
	if err := d.Diff(parent, next, prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	if liveUl.ChildCount() != 3 {
		t.Fatalf("ChildCount = %d, want 3", liveUl.ChildCount())
	}
	if liveUl.ChildAt(0) != liveA || liveUl.ChildAt(1) != liveB {
		t.Error("existing items must be untouched by an append")
	}
	if log.Count(PatchAppend) != 1 || log.Len() != 1 {
		t.Errorf("patches = %v, want exactly one append", log.Patches)
	}
	if got := liveUl.ChildAt(2).TextContent(); got != "c" {
		t.Errorf("appended item = %q, want c", got)
	}
}

func TestDiffTrailingRemovals(t *testing.T) {
	parent := dom.NewElement("body")
	prev := mountInto(t, parent, Ul(Li("a"), Li("b"), Li("c")))

	next := Ul(Li("a"))
	if err := Diff(parent, next, prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	liveUl := parent.ChildAt(0)
	if liveUl.ChildCount() != 1 {
		t.Fatalf("ChildCount = %d, want 1", liveUl.ChildCount())
	}
	if got := liveUl.TextContent(); got != "a" {
		t.Errorf("remaining content = %q, want a", got)
	}
}

func TestDiffMidListInsertReplacesTail(t *testing.T) {
	// Positional matching: inserting at the front rewrites every slot.
	parent := dom.NewElement("body")
	prev := mountInto(t, parent, Ul(Li("b"), Li("c")))

	log := &PatchLog{}
	d := &Differ{Recorder: log}
	next := Ul(Li("a"), Li("b"), Li("c"))
	if err := d.Diff(parent, next, prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	liveUl := parent.ChildAt(0)
	if got := liveUl.TextContent(); got != "abc" {
		t.Errorf("content = %q, want abc", got)
	}
	if log.Count(PatchReplace) != 2 || log.Count(PatchAppend) != 1 {
		t.Errorf("patches = %v, want 2 replaces and 1 append", log.Patches)
	}
}

func TestDiffTextChildUpdate(t *testing.T) {
	parent := dom.NewElement("body")
	prev := mountInto(t, parent, Output(Text("0")))

	if err := Diff(parent, Output(Text("1")), prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if got := parent.ChildAt(0).TextContent(); got != "1" {
		t.Errorf("TextContent = %q, want 1", got)
	}
}

func TestDiffPreservesUnrelatedListeners(t *testing.T) {
	// Reconciling one subtree must not disturb siblings' live listeners.
	clicks := 0
	build := func(count int) *VNode {
		return Div(
			Button(OnClick(func(dom.Event) { clicks++ }), "inc"),
			Output(Textf("%d", count)),
		)
	}

	parent := dom.NewElement("body")
	prev := mountInto(t, parent, build(0))

	if err := Diff(parent, build(1), prev, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}

	liveButton := parent.ChildAt(0).ChildAt(0)
	liveButton.DispatchEvent(dom.Event{Type: "click"})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1; the button's listener was lost", clicks)
	}
	if got := parent.ChildAt(0).ChildAt(1).TextContent(); got != "1" {
		t.Errorf("output = %q, want 1", got)
	}
}

func TestPatchOpString(t *testing.T) {
	cases := map[PatchOp]string{
		PatchAppend:  "Append",
		PatchRemove:  "Remove",
		PatchReplace: "Replace",
		PatchOp(0):   "Unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}

func TestPatchLog(t *testing.T) {
	log := &PatchLog{}
	log.Record(Patch{Op: PatchAppend, Tag: "div"})
	log.Record(Patch{Op: PatchAppend, Tag: "span"})
	log.Record(Patch{Op: PatchRemove, Tag: "div"})

	if log.Len() != 3 {
		t.Errorf("Len = %d, want 3", log.Len())
	}
	if log.Count(PatchAppend) != 2 {
		t.Errorf("Count(Append) = %d, want 2", log.Count(PatchAppend))
	}

	log.Reset()
	if log.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", log.Len())
	}
}

func TestDiffRecordsTextLabel(t *testing.T) {
	parent := dom.NewElement("body")
	log := &PatchLog{}
	d := &Differ{Recorder: log}

	if err := d.Diff(parent, Text("x"), nil, 0); err != nil {
		t.Fatalf("diff failed: %v", err)
	}
	if log.Len() != 1 || log.Patches[0].Tag != "#text" {
		t.Errorf("patches = %v, want one append tagged #text", log.Patches)
	}
}
