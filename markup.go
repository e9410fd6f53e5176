package tutor

// MarkupChecker reports markup constructs that survive sanitization.
// Residue returns the names of the constructs found ("emphasis",
// "heading"), or nil when the text is plain.
type MarkupChecker interface {
	Residue(text string) []string
}
