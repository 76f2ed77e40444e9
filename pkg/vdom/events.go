package vdom

import "github.com/puerro-dev/puerro/pkg/dom"

// On creates a listener attribute for the given event name. The name is
// used verbatim as the registration key: no "on" prefixing, no case
// normalization.
func On(name string, handler dom.Handler) Attr {
	return Attr{Key: name, Val: AttrVal{Kind: AttrListener, Listener: handler}}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler dom.Handler) Attr { return On("click", handler) }

// OnDblClick handles dblclick events.
func OnDblClick(handler dom.Handler) Attr { return On("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler dom.Handler) Attr { return On("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler dom.Handler) Attr { return On("mouseup", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler dom.Handler) Attr { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler dom.Handler) Attr { return On("keyup", handler) }

// Form events

// OnInput handles input events.
func OnInput(handler dom.Handler) Attr { return On("input", handler) }

// OnChange handles change events.
func OnChange(handler dom.Handler) Attr { return On("change", handler) }

// OnSubmit handles submit events.
func OnSubmit(handler dom.Handler) Attr { return On("submit", handler) }

// Focus events

// OnFocus handles focus events.
func OnFocus(handler dom.Handler) Attr { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler dom.Handler) Attr { return On("blur", handler) }
