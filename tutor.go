package tutor

import (
	"context"
	"fmt"
)

// Default generation parameters used for every completion.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2048
)

// Tutor answers tutoring requests by composing a prompt, issuing a single
// completion, and sanitizing the reply.
type Tutor struct {
	completer   Completer
	model       string
	temperature float64
	maxTokens   int
}

// Option configures a [Tutor].
type Option func(*Tutor)

// WithModel sets the model ID sent with every completion.
// Empty string means the provider uses its default model.
func WithModel(model string) Option {
	return func(t *Tutor) { t.model = model }
}

// WithTemperature sets the sampling temperature. Default is 0.7.
func WithTemperature(temp float64) Option {
	return func(t *Tutor) { t.temperature = temp }
}

// WithMaxTokens sets the maximum output length. Default is 2048.
func WithMaxTokens(n int) Option {
	return func(t *Tutor) { t.maxTokens = n }
}

// NewTutor creates a new Tutor backed by the given completer.
func NewTutor(completer Completer, opts ...Option) *Tutor {
	t := &Tutor{
		completer:   completer,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Ask answers req. Request fields are used as given, with no defaulting.
// An unsupported task returns an error wrapping
// ErrUnsupportedTask without calling the completer. Completer errors are
// returned unchanged; there is no retry.
func (t *Tutor) Ask(ctx context.Context, req Request) (Answer, error) {
	prompt, err := Compose(req)
	if err != nil {
		return Answer{}, err
	}

	temp := t.temperature
	creq := CompletionRequest{
		Model: t.model,
		Messages: []Message{
			{Role: RoleSystem, Content: prompt.System},
			{Role: RoleUser, Content: prompt.User},
		},
		MaxTokens:   t.maxTokens,
		Temperature: &temp,
	}
	if err := creq.Validate(); err != nil {
		return Answer{}, fmt.Errorf("completion request: %w", err)
	}

	reply, err := t.completer.Complete(ctx, creq)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Text: Sanitize(reply.Text), StopReason: reply.StopReason}, nil
}
