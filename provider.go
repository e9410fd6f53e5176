package tutor

import "context"

// Completer is a strategy pattern interface for chat-completion providers.
//
// Complete issues a single blocking completion and returns the model's text
// reply. Implementations must not retry: every failure is returned to the
// caller as-is.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

// Completion is the model's reply to a CompletionRequest.
type Completion struct {
	Text       string
	StopReason StopReason
}

// Truncated reports whether generation stopped at the output token limit.
func (c Completion) Truncated() bool {
	return c.StopReason == StopLength
}

// CompletionRequest carries model selection and generation parameters.
// The provider uses its own defaults when fields are zero/nil.
type CompletionRequest struct {
	Model       string // model ID, provider-specific; empty = provider default
	Messages    []Message
	MaxTokens   int      // 0 = provider default
	Temperature *float64 // nil = provider default
}
