package renderer

import "regexp"

// MarkupExpr matches the FUNC{operand} markup embedded in game messages,
// e.g. "You picked up ITEM{a key}." Group 1 is the function name, group 2
// the operand.
const MarkupExpr = `([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`

var markupPattern = regexp.MustCompile(MarkupExpr)

// Markup returns the compiled markup pattern shared by the backends.
func Markup() *regexp.Regexp {
	return markupPattern
}

// StripMarkup replaces every markup call with its bare operand.
func StripMarkup(msg string) string {
	return markupPattern.ReplaceAllString(msg, "$2")
}
