package vdom

import (
	"fmt"
	"strconv"

	"github.com/puerro-dev/puerro/pkg/dom"
)

// Render materializes a virtual node as a detached live node. The caller is
// responsible for inserting the result into a tree.
//
// A nil node renders as an empty text node. Scalar attributes are
// stringified and set on the element; nil-valued scalars are skipped
// entirely (no attribute is created). Listener attributes are registered
// under their key as event listeners. Children render recursively, in
// order.
func Render(n *VNode) *dom.Node {
	if n == nil {
		return dom.NewText("")
	}

	if n.Kind == KindText {
		return dom.NewText(n.Text)
	}

	el := dom.NewElement(n.Tag)

	for key, val := range n.Props {
		switch val.Kind {
		case AttrListener:
			el.AddEventListener(key, val.Listener)
		case AttrScalar:
			if val.Scalar == nil {
				continue
			}
			el.SetAttr(key, ScalarString(val.Scalar))
		}
	}

	for _, child := range n.Children {
		el.AppendChild(Render(child))
	}

	return el
}

// ScalarString converts a scalar attribute value to its attribute string.
func ScalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
