package agent

import (
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Sanitize enforces the plain-text contract on generated replies: every
// angle-bracket span is stripped and runs of whitespace collapse to a single
// space. Idempotent.
func Sanitize(text string) string {
	clean := tagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))
}
