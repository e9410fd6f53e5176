// Package together implements [tutor.Completer] for the Together AI
// chat-completions API.
//
// Together exposes an OpenAI-compatible endpoint, so the wire types below
// follow the OpenAI chat-completions schema.
package together

const (
	defaultBaseURL  = "https://api.together.xyz"
	defaultModel    = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"
	completionsPath = "/v1/chat/completions"
)

// apiRequest is the JSON body sent to the chat-completions endpoint.
type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Temperature *float64     `json:"temperature,omitempty"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
