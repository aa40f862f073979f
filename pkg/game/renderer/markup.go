package renderer

import (
	"regexp"
	"strings"
)

// markupPattern matches FUNCTION{operand} spans in messages
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

// Styler renders one markup span
type Styler func(function, operand string) string

// ApplyMarkup replaces each FUNCTION{operand} span in msg with the styler's rendering
func ApplyMarkup(msg string, style Styler) string {
	return markupPattern.ReplaceAllStringFunc(msg, func(span string) string {
		m := markupPattern.FindStringSubmatch(span)
		return style(m[1], m[2])
	})
}

// StripMarkup removes markup, keeping the operands
func StripMarkup(msg string) string {
	return ApplyMarkup(msg, func(_, operand string) string {
		return operand
	})
}

// VisibleLen returns the display length of msg once markup is removed
func VisibleLen(msg string) int {
	return len([]rune(StripMarkup(msg)))
}

// Truncate shortens plain text to at most n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return strings.TrimRight(string(r[:n-1]), " ") + "…"
}

// Span is a run of message text drawn with one markup function.
// Function is empty for plain text.
type Span struct {
	Function string
	Text     string
}

// Spans splits msg into plain and marked-up runs, in order
func Spans(msg string) []Span {
	var spans []Span
	last := 0
	for _, m := range markupPattern.FindAllStringSubmatchIndex(msg, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: msg[last:m[0]]})
		}
		spans = append(spans, Span{Function: msg[m[2]:m[3]], Text: msg[m[4]:m[5]]})
		last = m[1]
	}
	if last < len(msg) {
		spans = append(spans, Span{Text: msg[last:]})
	}
	return spans
}
