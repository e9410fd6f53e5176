package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/tutor"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ tutor.Completer = (*Client)(nil)

// Client implements [tutor.Completer] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*config)

type config struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// WithModel sets the model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(c *config) { c.model = model }
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(url string) Option {
	return func(c *config) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client for the SDK.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	cfg := config{model: defaultModel}
	for _, o := range opts {
		o(&cfg)
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: gc, model: cfg.model}, nil
}

// Complete sends a single GenerateContent request and returns the text of
// the first candidate.
func (c *Client) Complete(ctx context.Context, req tutor.CompletionRequest) (tutor.Completion, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	resp, err := c.client.Models.GenerateContent(ctx, model, ConvertMessages(req.Messages), BuildConfig(req))
	if err != nil {
		return tutor.Completion{}, fmt.Errorf("gemini: %w", err)
	}
	return ReplyText(resp)
}

// BuildConfig maps generation parameters and system messages onto a
// GenerateContentConfig. Exported for testing.
func BuildConfig(req tutor.CompletionRequest) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	var system []*genai.Part
	for _, m := range req.Messages {
		if m.Role == tutor.RoleSystem {
			system = append(system, &genai.Part{Text: m.Content})
		}
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{Parts: system}
	}

	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}

	return config
}

// ConvertMessages converts non-system tutor messages to genai Contents.
// System messages travel in the config's SystemInstruction instead.
// Exported for testing.
func ConvertMessages(msgs []tutor.Message) []*genai.Content {
	var result []*genai.Content
	for _, m := range msgs {
		switch m.Role {
		case tutor.RoleUser:
			result = append(result, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		case tutor.RoleAssistant:
			result = append(result, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: m.Content}},
			})
		}
	}
	return result
}

// ReplyText extracts the text and stop reason of the first candidate,
// skipping thought parts. A candidate stopped by a safety filter with no
// text is an error. Exported for testing.
func ReplyText(resp *genai.GenerateContentResponse) (tutor.Completion, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return tutor.Completion{}, errors.New("gemini: empty response")
	}
	cand := resp.Candidates[0]
	var b strings.Builder
	if cand.Content != nil {
		for _, p := range cand.Content.Parts {
			if p == nil || p.Thought {
				continue
			}
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 && cand.FinishReason == genai.FinishReasonSafety {
		return tutor.Completion{}, fmt.Errorf("gemini: response blocked: %s", cand.FinishReason)
	}
	return tutor.Completion{Text: b.String(), StopReason: mapFinishReason(cand.FinishReason)}, nil
}

func mapFinishReason(r genai.FinishReason) tutor.StopReason {
	switch r {
	case genai.FinishReasonStop:
		return tutor.StopEndTurn
	case genai.FinishReasonMaxTokens:
		return tutor.StopLength
	case genai.FinishReasonSafety, genai.FinishReasonRecitation, genai.FinishReasonBlocklist,
		genai.FinishReasonProhibitedContent, genai.FinishReasonSPII:
		return tutor.StopFilter
	default:
		return tutor.StopUnknown
	}
}
