package mock

import "github.com/fwojciec/tutor"

// Interface compliance check.
var _ tutor.MarkupChecker = (*MarkupChecker)(nil)

// MarkupChecker is a test double for tutor.MarkupChecker.
// Set ResidueFn before calling Residue.
type MarkupChecker struct {
	ResidueFn func(text string) []string
}

// Residue delegates to ResidueFn.
func (m *MarkupChecker) Residue(text string) []string {
	return m.ResidueFn(text)
}
