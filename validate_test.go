package tutor_test

import (
	"testing"

	"github.com/fwojciec/tutor"
	"github.com/stretchr/testify/assert"
)

func userMessages() []tutor.Message {
	return []tutor.Message{{Role: tutor.RoleUser, Content: "hello"}}
}

func TestCompletionRequest_Validate_ValidDefaults(t *testing.T) {
	t.Parallel()
	r := tutor.CompletionRequest{Messages: userMessages()}
	assert.NoError(t, r.Validate())
}

func TestCompletionRequest_Validate_ValidWithAllFields(t *testing.T) {
	t.Parallel()
	temp := 0.7
	r := tutor.CompletionRequest{
		Model: "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free",
		Messages: []tutor.Message{
			{Role: tutor.RoleSystem, Content: "You are a tutor."},
			{Role: tutor.RoleUser, Content: "hello"},
		},
		MaxTokens:   2048,
		Temperature: &temp,
	}
	assert.NoError(t, r.Validate())
}

func TestCompletionRequest_Validate_TemperatureBounds(t *testing.T) {
	t.Parallel()
	for _, temp := range []float64{0, 1, 2} {
		r := tutor.CompletionRequest{Messages: userMessages(), Temperature: &temp}
		assert.NoError(t, r.Validate(), "temperature %g", temp)
	}
	for _, temp := range []float64{-0.1, 2.1} {
		r := tutor.CompletionRequest{Messages: userMessages(), Temperature: &temp}
		assert.ErrorIs(t, r.Validate(), tutor.ErrValidation, "temperature %g", temp)
	}
}

func TestCompletionRequest_Validate_NegativeMaxTokens(t *testing.T) {
	t.Parallel()
	r := tutor.CompletionRequest{Messages: userMessages(), MaxTokens: -1}
	assert.ErrorIs(t, r.Validate(), tutor.ErrValidation)
}

func TestCompletionRequest_Validate_NoMessages(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, tutor.CompletionRequest{}.Validate(), tutor.ErrValidation)
}

func TestCompletionRequest_Validate_UnknownRole(t *testing.T) {
	t.Parallel()
	r := tutor.CompletionRequest{Messages: []tutor.Message{{Role: "tool", Content: "x"}}}
	err := r.Validate()
	assert.ErrorIs(t, err, tutor.ErrValidation)
	assert.Contains(t, err.Error(), "message 0")
}
