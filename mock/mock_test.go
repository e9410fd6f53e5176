package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/tutor"
	"github.com/fwojciec/tutor/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()
	t.Run("delegates to CompleteFn", func(t *testing.T) {
		t.Parallel()
		var got tutor.CompletionRequest
		c := mock.Completer{
			CompleteFn: func(ctx context.Context, req tutor.CompletionRequest) (tutor.Completion, error) {
				got = req
				return tutor.Completion{Text: "reply", StopReason: tutor.StopEndTurn}, nil
			},
		}
		want := tutor.CompletionRequest{Model: "m", MaxTokens: 10}
		out, err := c.Complete(context.Background(), want)
		require.NoError(t, err)
		assert.Equal(t, tutor.Completion{Text: "reply", StopReason: tutor.StopEndTurn}, out)
		assert.Equal(t, want, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("api error")
		c := mock.Completer{
			CompleteFn: func(ctx context.Context, req tutor.CompletionRequest) (tutor.Completion, error) {
				return tutor.Completion{}, wantErr
			},
		}
		_, err := c.Complete(context.Background(), tutor.CompletionRequest{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when CompleteFn not set", func(t *testing.T) {
		t.Parallel()
		c := mock.Completer{}
		assert.Panics(t, func() {
			_, _ = c.Complete(context.Background(), tutor.CompletionRequest{})
		})
	})
}

func TestMarkupChecker_Residue(t *testing.T) {
	t.Parallel()
	m := mock.MarkupChecker{
		ResidueFn: func(text string) []string {
			return []string{"heading"}
		},
	}
	assert.Equal(t, []string{"heading"}, m.Residue("# x"))
}
