// Package gemini implements [tutor.Completer] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between tutor's
// completion types and the Gemini API types.
package gemini

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 2048
)
