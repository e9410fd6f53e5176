package together

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/tutor"
)

// Interface compliance check.
var _ tutor.Completer = (*Client)(nil)

// Client implements [tutor.Completer] for the Together AI API.
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

// WithModel sets the default model ID. Default is
// meta-llama/Llama-3.3-70B-Instruct-Turbo-Free.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Together [Client] with the given API key and options.
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

// Complete sends a single chat-completion request and returns the content of
// the first choice.
func (c *Client) Complete(ctx context.Context, req tutor.CompletionRequest) (tutor.Completion, error) {
	if c.apiKey == "" {
		return tutor.Completion{}, errors.New("together: API key is empty")
	}
	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return tutor.Completion{}, fmt.Errorf("together: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return tutor.Completion{}, fmt.Errorf("together: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return tutor.Completion{}, fmt.Errorf("together: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tutor.Completion{}, parseHTTPError(resp)
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return tutor.Completion{}, fmt.Errorf("together: decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return tutor.Completion{}, errors.New("together: empty response")
	}
	choice := out.Choices[0]
	return tutor.Completion{
		Text:       choice.Message.Content,
		StopReason: mapFinishReason(choice.FinishReason),
	}, nil
}

func mapFinishReason(s string) tutor.StopReason {
	switch s {
	case "stop", "eos":
		return tutor.StopEndTurn
	case "length":
		return tutor.StopLength
	case "content_filter":
		return tutor.StopFilter
	default:
		return tutor.StopUnknown
	}
}

func (c *Client) buildRequest(req tutor.CompletionRequest) apiRequest {
	model := req.Model
	if model == "" {
		model = c.model
	}
	msgs := make([]apiMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = apiMessage{Role: string(m.Role), Content: m.Content}
	}
	return apiRequest{
		Model:       model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("together: HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("together: HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return fmt.Errorf("together: HTTP %d: %s", resp.StatusCode, apiErr.Error.Message)
}
