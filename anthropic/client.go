package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/tutor"
)

// Interface compliance check.
var _ tutor.Completer = (*Client)(nil)

// Client implements [tutor.Completer] for the Anthropic Messages API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithModel sets the default model ID. Default is claude-sonnet-4-20250514.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Anthropic [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends a non-streaming request to the Anthropic Messages API and
// returns the concatenated text of the reply. A reply without any text
// block is an error.
func (c *Client) Complete(ctx context.Context, req tutor.CompletionRequest) (tutor.Completion, error) {
	body, err := c.buildRequestBody(req)
	if err != nil {
		return tutor.Completion{}, fmt.Errorf("anthropic: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return tutor.Completion{}, fmt.Errorf("anthropic: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return tutor.Completion{}, fmt.Errorf("anthropic: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tutor.Completion{}, parseHTTPError(resp)
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return tutor.Completion{}, fmt.Errorf("anthropic: decode response: %w", err)
	}
	var b strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return tutor.Completion{}, errors.New("anthropic: empty response")
	}
	return tutor.Completion{Text: b.String(), StopReason: mapStopReason(out.StopReason)}, nil
}

func mapStopReason(s string) tutor.StopReason {
	switch s {
	case "end_turn", "stop_sequence":
		return tutor.StopEndTurn
	case "max_tokens":
		return tutor.StopLength
	case "refusal":
		return tutor.StopFilter
	default:
		return tutor.StopUnknown
	}
}

func (c *Client) buildRequestBody(req tutor.CompletionRequest) ([]byte, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	system, msgs := convertMessages(req.Messages)
	apiReq := apiRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		System:      convertSystem(system),
		Messages:    msgs,
		Temperature: req.Temperature,
	}
	return json.Marshal(apiReq)
}

// convertSystem converts a system prompt string to an array of content blocks
// suitable for the Anthropic API, with a cache breakpoint on the block.
// Returns nil when the prompt is empty.
func convertSystem(prompt string) []apiContentBlock {
	if prompt == "" {
		return nil
	}
	return []apiContentBlock{{
		Type:         "text",
		Text:         prompt,
		CacheControl: &apiCacheControl{Type: "ephemeral"},
	}}
}

// convertMessages splits system messages out of the conversation, since the
// Messages API takes the system prompt as a top-level field. Multiple system
// messages are joined with a blank line.
func convertMessages(msgs []tutor.Message) (string, []apiMessage) {
	var (
		system []string
		result []apiMessage
	)
	for _, m := range msgs {
		if m.Role == tutor.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		result = append(result, apiMessage{
			Role:    string(m.Role),
			Content: []apiContentBlock{{Type: "text", Text: m.Content}},
		})
	}
	return strings.Join(system, "\n\n"), result
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic: HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("anthropic: HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return fmt.Errorf("anthropic: %s: %s", apiErr.Error.Type, apiErr.Error.Message)
}
