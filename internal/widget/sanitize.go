package widget

import "html"

// Sanitize escapes text crossing the trust boundary so it can never be read
// back as markup: &, <, >, " and ' become character entities. Not idempotent
// (escaping twice double-escapes), so it runs exactly once, at store time.
func Sanitize(text string) string {
	return html.EscapeString(text)
}
