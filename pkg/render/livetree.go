package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/puerro-dev/puerro/pkg/dom"
	"github.com/puerro-dev/puerro/pkg/vdom"
)

// RenderLiveToString serializes a live tree to HTML.
func RenderLiveToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := RenderLiveToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderLiveToWriter streams a live tree to the given writer.
func RenderLiveToWriter(w io.Writer, node *dom.Node) error {
	if node == nil {
		return nil
	}

	if node.Type == dom.TextNode {
		_, err := w.Write([]byte(escapeHTML(node.Text)))
		return err
	}

	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}

	attrs := node.Attrs()
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrs[key])); err != nil {
			return err
		}
	}

	if isVoidElement(node.Tag) {
		_, err := w.Write([]byte{'>'})
		return err
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}
	for _, child := range node.Children() {
		if err := RenderLiveToWriter(w, child); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// ToVNode converts a live tree back into a virtual one. Event listeners
// are not recoverable from a live tree, so the result carries scalar
// attributes only.
func ToVNode(node *dom.Node) *vdom.VNode {
	if node == nil {
		return nil
	}

	if node.Type == dom.TextNode {
		return vdom.Text(node.Text)
	}

	out := &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      node.Tag,
		Props:    make(vdom.Props),
		Children: make([]*vdom.VNode, 0, len(node.Children())),
	}
	for key, value := range node.Attrs() {
		out.Props[key] = vdom.AttrVal{Kind: vdom.AttrScalar, Scalar: value}
	}
	for _, child := range node.Children() {
		out.Children = append(out.Children, ToVNode(child))
	}
	return out
}
