package gen

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient calls OpenAI or any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates an OpenAI-backed client. baseURL may be empty
// for the official API or point at a compatible endpoint.
func NewOpenAIClient(apiKey, baseURL, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

// Complete sends the prompt as a single user message. The first choice's
// message content maps onto the combined-text field.
func (c *OpenAIClient) Complete(ctx context.Context, promptText string, p Params) (*Response, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: promptText},
		},
		MaxTokens:   p.MaxOutputTokens,
		Temperature: p.Temperature,
		N:           p.CandidateCount,
	})
	if err != nil {
		return nil, fmt.Errorf("openai generate failed: %w", err)
	}

	out := &Response{}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name identifies the provider and model.
func (c *OpenAIClient) Name() string {
	return fmt.Sprintf("openai:%s", c.model)
}
