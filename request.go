package tutor

// DefaultLanguage is the programming language assumed when a request
// does not name one. The HTTP boundary applies it when the language key is
// absent or null; an explicit empty string is kept.
const DefaultLanguage = "Python"

// Request is a single tutoring request as received at the boundary.
// Question is unused by Debug; Language is used only by Solve and Debug;
// Code is used only by Debug. All fields are interpolated as given.
type Request struct {
	Task     Task
	Question string
	Language string
	Code     string
}
