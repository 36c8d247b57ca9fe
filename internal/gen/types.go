// Package gen drives a single generation attempt: prompt in, adherence
// checked entry text out.
package gen

import "context"

// Request describes one generation attempt. Built fresh per attempt and
// not mutated afterwards.
type Request struct {
	Tone      string
	WordCount int
	Examples  []string
	// MaxTokens overrides the derived output budget when positive.
	MaxTokens int
}

// Result carries the post-processed entry text. OK is false on any
// failure: provider error, blocked prompt or an empty response.
type Result struct {
	Text string
	OK   bool
}

// Params are the fixed generation parameters sent with every call.
type Params struct {
	MaxOutputTokens int
	Temperature     float32
	CandidateCount  int
}

// Response is the provider-neutral response shape. Providers fill
// whichever fields their API exposes: a combined text field, candidate
// content parts, or a block reason. Extraction precedence lives in the
// invoker (see extract).
type Response struct {
	Text        string
	Candidates  []Candidate
	BlockReason string
}

// Candidate is one response candidate's text fragments in order.
type Candidate struct {
	Parts []string
}

// Client is a model service the invoker can call. Implementations must
// return an error for transport failures and a Response for anything
// the service answered, even blocked or empty answers.
type Client interface {
	Complete(ctx context.Context, prompt string, p Params) (*Response, error)
}
