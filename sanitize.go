package tutor

import (
	"regexp"
	"strings"
)

var (
	emphasisPattern = regexp.MustCompile(`\*{1,2}(.*?)\*{1,2}`)
	headingPattern  = regexp.MustCompile(`(?m)^#+\s*`)
	blankRunPattern = regexp.MustCompile(`\n{2,}`)
)

// Sanitize strips markdown emphasis and heading markers from a model reply
// and collapses runs of newlines. The passes run over the whole string in a
// fixed order: emphasis, headings, newlines, then surrounding whitespace is
// trimmed. The result is not guaranteed to be a fixed point: trimming can
// move a heading marker to the start of the text, so Sanitize(" # x") is
// "# x" while Sanitize("# x") is "x".
func Sanitize(text string) string {
	text = emphasisPattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "")
	text = blankRunPattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
