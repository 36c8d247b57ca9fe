package gen

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// AnthropicClient calls the Anthropic Messages API.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicClient creates a Claude-backed client.
func NewAnthropicClient(apiKey, model string) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if model == "" {
		model = "claude-3-5-haiku-latest"
	}
	return &AnthropicClient{client: anthropic.NewClient(apiKey), model: model}, nil
}

// Complete sends the prompt as a single user message. Text content
// blocks map onto the combined-text field in order.
func (c *AnthropicClient) Complete(ctx context.Context, promptText string, p Params) (*Response, error) {
	temp := p.Temperature
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(promptText),
		},
		MaxTokens:   p.MaxOutputTokens,
		Temperature: &temp,
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic generate failed: %w", err)
	}

	out := &Response{}
	for _, content := range resp.Content {
		out.Text += content.GetText()
	}
	return out, nil
}

// Name identifies the provider and model.
func (c *AnthropicClient) Name() string {
	return fmt.Sprintf("claude:%s", c.model)
}
