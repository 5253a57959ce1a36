package openaichat

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Client adapts an OpenAI-compatible chat endpoint to the Generator
// interface, for self-hosted deployments that do not expose the Together
// inference API.
type Client struct {
	chatModel model.ChatModel
}

// NewClient builds the eino chat model. Temperature, top_p, max_tokens and
// stop sequences come from the caller so they stay aligned with the
// together provider.
func NewClient(ctx context.Context, baseURL, apiKey, modelName string, temperature, topP float32, maxTokens int, stop []string) (*Client, error) {
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		Model:       modelName,
		Temperature: &temperature,
		TopP:        &topP,
		MaxTokens:   &maxTokens,
		Stop:        stop,
	})
	if err != nil {
		return nil, err
	}
	return &Client{chatModel: cm}, nil
}

// Generate sends the prompt as a single user message. Rate-limit rejections
// are retried with exponential backoff; other errors propagate immediately.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	maxRetries := 3
	baseDelay := 2 * time.Second
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		messages := []*schema.Message{
			{Role: schema.User, Content: prompt},
		}

		resp, err := c.chatModel.Generate(ctx, messages)
		if err != nil {
			if strings.Contains(err.Error(), "429") || strings.Contains(strings.ToLower(err.Error()), "too many requests") {
				lastErr = err
				if i < maxRetries {
					time.Sleep(baseDelay * time.Duration(1<<i))
					continue
				}
			}
			return "", err
		}

		return strings.TrimSpace(resp.Content), nil
	}
	return "", lastErr
}
