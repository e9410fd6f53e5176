// Package mock provides test doubles for tutor interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/tutor"
)

// Interface compliance check.
var _ tutor.Completer = (*Completer)(nil)

// Completer is a test double for tutor.Completer.
// Set CompleteFn before calling Complete.
type Completer struct {
	CompleteFn func(ctx context.Context, req tutor.CompletionRequest) (tutor.Completion, error)
}

// Complete delegates to CompleteFn.
func (c *Completer) Complete(ctx context.Context, req tutor.CompletionRequest) (tutor.Completion, error) {
	return c.CompleteFn(ctx, req)
}
