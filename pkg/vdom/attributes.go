package vdom

import "strings"

// attr creates a scalar Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Val: AttrVal{Kind: AttrScalar, Scalar: value}}
}

// AttrOf creates a scalar attribute with an arbitrary key.
func AttrOf(key string, value any) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Form attributes

// TypeAttr sets the type attribute (named to avoid conflict with Go keywords).
func TypeAttr(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Required sets the required attribute.
func Required(required bool) Attr { return attr("required", required) }

// For sets the for attribute on a label.
func For(id string) Attr { return attr("for", id) }

// Link and media attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Title sets the title attribute (named TitleAttr to avoid conflict with the Title element).
func TitleAttr(text string) Attr { return attr("title", text) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TabIndex sets the tabindex attribute.
func TabIndex(i int) Attr { return attr("tabindex", i) }
