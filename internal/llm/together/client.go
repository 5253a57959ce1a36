package together

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/iWorld-y/venture_radar/internal/llm"
)

const (
	defaultBaseURL = "https://api.together.xyz/inference"
	defaultModel   = "mistralai/Mixtral-8x7B-Instruct-v0.1"
)

// Client calls the Together inference API.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClient creates a Together client. An empty model falls back to the
// default Mixtral instruct model.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint.
// Used by tests.
func NewClientWithBaseURL(apiKey, model, baseURL string) *Client {
	c := NewClient(apiKey, model)
	c.baseURL = baseURL
	return c
}

type inferenceRequest struct {
	Model             string   `json:"model"`
	Prompt            string   `json:"prompt"`
	MaxTokens         int      `json:"max_tokens"`
	Temperature       float64  `json:"temperature"`
	TopP              float64  `json:"top_p"`
	TopK              int      `json:"top_k"`
	RepetitionPenalty float64  `json:"repetition_penalty"`
	Stop              []string `json:"stop"`
}

type inferenceResponse struct {
	Output *struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	} `json:"output"`
}

// Generate runs one inference call with the fixed sampling parameters and
// returns the trimmed narrative text. A response without output.choices is
// an error; there is no retry.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(inferenceRequest{
		Model:             c.model,
		Prompt:            prompt,
		MaxTokens:         llm.MaxTokens,
		Temperature:       llm.Temperature,
		TopP:              llm.TopP,
		TopK:              llm.TopK,
		RepetitionPenalty: llm.RepetitionPenalty,
		Stop:              llm.StopSequences,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}

	httpReq.Header.Add("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Add("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read body failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("together api error (status %d): %s", res.StatusCode, string(body))
	}

	var infResp inferenceResponse
	if err := json.Unmarshal(body, &infResp); err != nil {
		return "", fmt.Errorf("unmarshal response failed: %w", err)
	}

	if infResp.Output == nil || len(infResp.Output.Choices) == 0 {
		return "", fmt.Errorf("together response missing output.choices")
	}

	return strings.TrimSpace(infResp.Output.Choices[0].Text), nil
}
