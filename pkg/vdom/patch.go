package vdom

// PatchOp is the type of mutation applied to the live tree.
type PatchOp uint8

const (
	PatchAppend  PatchOp = 0x01 // Render and append a new node
	PatchRemove  PatchOp = 0x02 // Remove the node at a child slot
	PatchReplace PatchOp = 0x03 // Replace the node at a child slot
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchAppend:
		return "Append"
	case PatchRemove:
		return "Remove"
	case PatchReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Patch describes one applied mutation. Unlike a deferred patch queue, the
// differ applies mutations immediately; patches exist so observers (metrics,
// the dev patch stream, tests) can see what happened.
type Patch struct {
	Op    PatchOp // Operation type
	Index int     // Child slot in the parent
	Tag   string  // Tag of the subject node, or "#text"
}

// Recorder observes patches as the differ applies them.
type Recorder interface {
	Record(Patch)
}

// PatchLog is a Recorder that accumulates patches in order.
type PatchLog struct {
	Patches []Patch
}

// Record implements Recorder.
func (l *PatchLog) Record(p Patch) {
	l.Patches = append(l.Patches, p)
}

// Count returns the number of recorded patches with the given op.
func (l *PatchLog) Count(op PatchOp) int {
	n := 0
	for _, p := range l.Patches {
		if p.Op == op {
			n++
		}
	}
	return n
}

// Len returns the total number of recorded patches.
func (l *PatchLog) Len() int {
	return len(l.Patches)
}

// Reset clears the log for reuse.
func (l *PatchLog) Reset() {
	l.Patches = l.Patches[:0]
}

// nodeLabel returns the patch Tag for a virtual node.
func nodeLabel(n *VNode) string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return "#text"
	}
	return n.Tag
}
