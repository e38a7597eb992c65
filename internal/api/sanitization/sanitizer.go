package sanitization

import (
	"html/template"
	"strings"
)

// EscapeField trims surrounding whitespace and HTML-escapes the value.
// Escaping happens on every accepted submission, not only on suspicious
// input: the fields are later interpolated into HTML email bodies.
func EscapeField(input string) string {
	return template.HTMLEscapeString(strings.TrimSpace(input))
}

// NormalizeEmail lower-cases and trims an email address into its
// canonical form. The address is never HTML-escaped: it must stay
// deliverable (apostrophe and ampersand are legal in a local part),
// so escaping happens only where the address is embedded in a body.
func NormalizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
