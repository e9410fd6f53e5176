// Package goldmark detects markdown constructs left in sanitized replies
// using the goldmark parser.
package goldmark

import (
	"github.com/fwojciec/tutor"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Interface compliance check.
var _ tutor.MarkupChecker = (*Checker)(nil)

// Residue kinds reported by Checker.
const (
	KindEmphasis = "emphasis"
	KindHeading  = "heading"
)

// Checker implements tutor.MarkupChecker.
type Checker struct {
	parser parser.Parser
}

// New returns a Checker using goldmark's default CommonMark parser.
func New() *Checker {
	return &Checker{parser: goldmark.New().Parser()}
}

// Residue parses s as markdown and returns the kinds of emphasis and
// heading nodes it contains, each reported once in order of first
// appearance. It returns nil when neither is present.
func (c *Checker) Residue(s string) []string {
	if s == "" {
		return nil
	}
	doc := c.parser.Parse(text.NewReader([]byte(s)))

	var found []string
	seen := make(map[string]bool)
	add := func(kind string) {
		if !seen[kind] {
			seen[kind] = true
			found = append(found, kind)
		}
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindEmphasis:
			add(KindEmphasis)
		case ast.KindHeading:
			add(KindHeading)
		}
		return ast.WalkContinue, nil
	})
	return found
}
