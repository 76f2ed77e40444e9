package vdom

// Changed reports whether two virtual nodes differ enough that the live
// node must be replaced rather than recursed into. It is true when:
//
//   - exactly one of the nodes is nil, or their kinds differ
//   - both are text nodes with different content
//   - both are elements with different tags
//   - their attribute maps differ (see attrsChanged)
//
// Attribute order never affects the result.
func Changed(prev, next *VNode) bool {
	if prev == nil || next == nil {
		return prev != next
	}
	if prev.Kind != next.Kind {
		return true
	}
	if prev.Kind == KindText {
		return prev.Text != next.Text
	}
	if prev.Tag != next.Tag {
		return true
	}
	return attrsChanged(prev.Props, next.Props)
}

// attrsChanged compares attribute maps. Maps differ when their key counts
// differ, when a key is present in one but not the other, when a key's
// attribute kind flips between scalar and listener, or when a shared scalar
// key's stringified values differ. Listener functions are not comparable;
// two listeners under the same key are treated as equal.
func attrsChanged(prev, next Props) bool {
	if len(prev) != len(next) {
		return true
	}
	for key, pv := range prev {
		nv, ok := next[key]
		if !ok {
			return true
		}
		if pv.Kind != nv.Kind {
			return true
		}
		if pv.Kind == AttrScalar && !scalarEqual(pv.Scalar, nv.Scalar) {
			return true
		}
	}
	return false
}

// scalarEqual compares two scalar attribute values loosely: nil matches
// only nil, everything else compares by stringified form.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return ScalarString(a) == ScalarString(b)
}
