package gen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API through the official SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash-latest"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends the prompt and maps the SDK response onto the neutral
// Response shape. Gemini has no separate combined-text field, so only
// candidate parts and the prompt-feedback block reason are filled; the
// invoker's extraction precedence handles the rest.
func (c *GeminiClient) Complete(ctx context.Context, promptText string, p Params) (*Response, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(promptText, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(p.MaxOutputTokens),
		Temperature:     genai.Ptr(p.Temperature),
		CandidateCount:  int32(p.CandidateCount),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	out := &Response{}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var parts []string
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				parts = append(parts, part.Text)
			}
		}
		out.Candidates = append(out.Candidates, Candidate{Parts: parts})
	}
	if resp.PromptFeedback != nil {
		out.BlockReason = string(resp.PromptFeedback.BlockReason)
	}
	return out, nil
}

// Name identifies the provider and model.
func (c *GeminiClient) Name() string {
	return fmt.Sprintf("gemini:%s", c.model)
}
