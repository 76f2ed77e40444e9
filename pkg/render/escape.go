package render

import "strings"

// contentEscaper rewrites the characters that open or close markup inside
// element content.
var contentEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// attrEscaper additionally rewrites whitespace that would break attribute
// parsing.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	return contentEscaper.Replace(s)
}

// escapeAttr escapes text for inclusion in an HTML attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
