package render

import (
	"html"
	"strings"
)

// mdEscaper neutralizes the Markdown metacharacters that would let service
// or user text break out of the surrounding structure. Deliberately narrow:
// hyphens and periods stay readable.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`#`, `\#`,
	`|`, `\|`,
	`>`, `\>`,
	`~`, `\~`,
)

// EscapeMD escapes Markdown metacharacters in dynamic text before it is
// interpolated into a Markdown template.
func EscapeMD(s string) string {
	return mdEscaper.Replace(s)
}

// EscapeHTML escapes dynamic text before it is interpolated into an HTML
// fragment.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
