package dom

// NodeType discriminates element nodes from text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota // <div>, <button>, etc.
	TextNode                    // literal character data
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners registered on a node.
type Event struct {
	Type   string // event name as registered, e.g. "click"
	Target *Node  // node the event was dispatched on
	Value  string // payload, e.g. an input's current value
}

// Handler is an event listener callback.
type Handler func(Event)

// Node is one node of the live display tree. A Node is either an element
// (Tag, attributes, listeners, children) or a text node (Text).
type Node struct {
	Type      NodeType
	Tag       string
	Text      string
	attrs     map[string]string
	listeners map[string][]Handler
	children  []*Node
	parent    *Node
}

// NewElement creates a detached element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{
		Type:      ElementNode,
		Tag:       tag,
		attrs:     make(map[string]string),
		listeners: make(map[string][]Handler),
	}
}

// NewText creates a detached text node with the given content.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// Parent returns the node's parent, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in order. The returned slice is the
// node's own backing storage and must not be mutated by callers.
func (n *Node) Children() []*Node { return n.children }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// ChildAt returns the child at index i, or nil if i is out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// SetAttr sets attribute key to value, overwriting any previous value.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns the value of attribute key and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// DelAttr removes attribute key. Removing an unset attribute is a no-op.
func (n *Node) DelAttr(key string) {
	delete(n.attrs, key)
}

// Attrs returns a copy of the node's attributes.
func (n *Node) Attrs() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// AddEventListener registers handler for the given event name. Names are
// case-sensitive and not normalized; "click" and "Click" are distinct.
func (n *Node) AddEventListener(event string, handler Handler) {
	if handler == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]Handler)
	}
	n.listeners[event] = append(n.listeners[event], handler)
}

// ListenerCount returns the number of listeners registered for event.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// DispatchEvent invokes every listener registered for e.Type, in
// registration order. The event's Target is set to n if unset.
func (n *Node) DispatchEvent(e Event) {
	if e.Target == nil {
		e.Target = n
	}
	// Copy before invoking so a listener adding listeners does not
	// extend the current dispatch.
	hs := make([]Handler, len(n.listeners[e.Type]))
	copy(hs, n.listeners[e.Type])
	for _, h := range hs {
		h(e)
	}
}

// AppendChild detaches child from its current parent and appends it as the
// last child of n.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// InsertChild inserts child at index i, shifting later siblings right.
// An index at or past the end appends.
func (n *Node) InsertChild(i int, child *Node) {
	if child == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(n.children) {
		n.AppendChild(child)
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
}

// ReplaceChild replaces the child at index i with child and returns the
// displaced node. Returns nil without mutating if i is out of range.
func (n *Node) ReplaceChild(i int, child *Node) *Node {
	if i < 0 || i >= len(n.children) || child == nil {
		return nil
	}
	old := n.children[i]
	old.parent = nil
	child.Detach()
	child.parent = n
	n.children[i] = child
	return old
}

// RemoveChild removes and returns the child at index i. Returns nil without
// mutating if i is out of range.
func (n *Node) RemoveChild(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	old := n.children[i]
	old.parent = nil
	n.children = append(n.children[:i], n.children[i+1:]...)
	return old
}

// Detach removes n from its parent, if any.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.RemoveChild(i)
			return
		}
	}
	n.parent = nil
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var out string
	for _, c := range n.children {
		out += c.TextContent()
	}
	return out
}
