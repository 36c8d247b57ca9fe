package gen

import (
	"context"
	"strings"

	"journalgen/internal/length"
	"journalgen/internal/logger"
	"journalgen/internal/prompt"
)

const (
	// defaultTemperature is a moderate creativity setting for journal text.
	defaultTemperature = 0.7

	// Output budget heuristic: tokens run roughly 1.5x the word target
	// for this kind of prose, plus a little headroom, with a floor for
	// very small targets.
	minOutputTokens    = 50
	tokensPerWord      = 1.5
	tokenBudgetPadding = 30
)

// MaxOutputTokens returns the output token budget for a word target. A
// positive override is used verbatim.
func MaxOutputTokens(wordCount, override int) int {
	if override > 0 {
		return override
	}
	budget := int(float64(wordCount)*tokensPerWord) + tokenBudgetPadding
	if budget < minOutputTokens {
		return minOutputTokens
	}
	return budget
}

// Generator runs the sample-free part of the pipeline: compose, invoke,
// enforce length.
type Generator struct {
	client Client
}

// NewGenerator wraps a model client.
func NewGenerator(c Client) *Generator {
	return &Generator{client: c}
}

// Generate produces one journal entry. Failures are signaled through
// Result.OK, never through a returned error: a failed attempt is an
// expected outcome the caller decides how to handle. No retries are
// made here.
func (g *Generator) Generate(ctx context.Context, req Request) Result {
	p := prompt.Compose(req.Tone, req.WordCount, req.Examples)
	params := Params{
		MaxOutputTokens: MaxOutputTokens(req.WordCount, req.MaxTokens),
		Temperature:     defaultTemperature,
		CandidateCount:  1,
	}
	logger.Debugf("sending prompt (%d chars, max_output_tokens=%d, temperature=%g)",
		len(p), params.MaxOutputTokens, params.Temperature)

	resp, err := g.client.Complete(ctx, p, params)
	if err != nil {
		logger.Errorf("model call failed: %v", err)
		return Result{}
	}

	raw, ok := extract(resp)
	if !ok {
		if resp.BlockReason != "" {
			logger.Warnf("prompt blocked by model service: %s", resp.BlockReason)
		} else {
			logger.Warnf("model returned no usable text")
		}
		return Result{}
	}

	text := strings.TrimSpace(raw)
	words := length.CountWords(text)
	v := length.Check(words, req.WordCount, length.DefaultTolerance)
	if v.Adherent {
		logger.Infof("word count %d within tolerance of target %d (deviation %+.2f%%)",
			words, req.WordCount, v.Deviation*100)
	} else {
		logger.Infof("word count %d outside tolerance of target %d (deviation %+.2f%%), adjusting",
			words, req.WordCount, v.Deviation*100)
	}

	return Result{Text: length.Enforce(text, req.WordCount), OK: true}
}

// extract pulls plain text out of a response. Precedence: the combined
// text field, then the first candidate's concatenated parts, then
// failure.
func extract(r *Response) (string, bool) {
	if r == nil {
		return "", false
	}
	if r.Text != "" {
		return r.Text, true
	}
	if len(r.Candidates) > 0 {
		joined := strings.Join(r.Candidates[0].Parts, "")
		if joined != "" {
			return joined, true
		}
	}
	return "", false
}
