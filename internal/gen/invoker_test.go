package gen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"journalgen/internal/length"
)

type fakeClient struct {
	resp       *Response
	err        error
	lastPrompt string
	lastParams Params
	calls      int
}

func (f *fakeClient) Complete(_ context.Context, prompt string, p Params) (*Response, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastParams = p
	return f.resp, f.err
}

func TestMaxOutputTokensHeuristic(t *testing.T) {
	cases := []struct {
		words, override, want int
	}{
		{100, 0, 180},  // 100*1.5 + 30
		{0, 0, 50},     // floor
		{10, 0, 50},    // 45 < floor
		{14, 0, 51},    // floor(21)+30
		{100, 120, 120}, // override verbatim
	}
	for _, c := range cases {
		if got := MaxOutputTokens(c.words, c.override); got != c.want {
			t.Fatalf("MaxOutputTokens(%d, %d) = %d, want %d", c.words, c.override, got, c.want)
		}
	}
}

func TestGenerateSendsFixedParams(t *testing.T) {
	fc := &fakeClient{resp: &Response{Text: "a generated entry"}}
	g := NewGenerator(fc)

	res := g.Generate(context.Background(), Request{Tone: "calm", WordCount: 100})
	if !res.OK {
		t.Fatalf("expected success")
	}
	if fc.lastParams.MaxOutputTokens != 180 {
		t.Fatalf("unexpected token budget %d", fc.lastParams.MaxOutputTokens)
	}
	if fc.lastParams.Temperature != 0.7 {
		t.Fatalf("unexpected temperature %v", fc.lastParams.Temperature)
	}
	if fc.lastParams.CandidateCount != 1 {
		t.Fatalf("unexpected candidate count %d", fc.lastParams.CandidateCount)
	}
	if !strings.Contains(fc.lastPrompt, "calm") {
		t.Fatalf("prompt missing tone: %q", fc.lastPrompt)
	}
}

func TestGenerateExtractionPrecedence(t *testing.T) {
	// Direct text wins over candidates.
	fc := &fakeClient{resp: &Response{
		Text:       "direct text",
		Candidates: []Candidate{{Parts: []string{"candidate text"}}},
	}}
	res := NewGenerator(fc).Generate(context.Background(), Request{Tone: "calm", WordCount: 100})
	if !res.OK || res.Text != "direct text" {
		t.Fatalf("expected direct text, got %#v", res)
	}

	// Candidate parts are concatenated when there is no direct text.
	fc = &fakeClient{resp: &Response{
		Candidates: []Candidate{{Parts: []string{"first ", "second"}}, {Parts: []string{"ignored"}}},
	}}
	res = NewGenerator(fc).Generate(context.Background(), Request{Tone: "calm", WordCount: 100})
	if !res.OK || res.Text != "first second" {
		t.Fatalf("expected joined first-candidate parts, got %#v", res)
	}
}

func TestGenerateEmptyResponseFails(t *testing.T) {
	for _, resp := range []*Response{
		{},
		{Candidates: []Candidate{{}}},
		{BlockReason: "SAFETY"},
	} {
		fc := &fakeClient{resp: resp}
		res := NewGenerator(fc).Generate(context.Background(), Request{Tone: "calm", WordCount: 50})
		if res.OK {
			t.Fatalf("expected failure for response %#v", resp)
		}
		if res.Text != "" {
			t.Fatalf("failed result must carry no text, got %q", res.Text)
		}
	}
}

func TestGenerateClientErrorFails(t *testing.T) {
	fc := &fakeClient{err: errors.New("connection reset")}
	res := NewGenerator(fc).Generate(context.Background(), Request{Tone: "calm", WordCount: 50})
	if res.OK {
		t.Fatalf("expected failure on client error")
	}
	if fc.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fc.calls)
	}
}

func TestGenerateEnforcesLength(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 160))
	fc := &fakeClient{resp: &Response{Text: long}}
	res := NewGenerator(fc).Generate(context.Background(), Request{Tone: "calm", WordCount: 100})
	if !res.OK {
		t.Fatalf("expected success")
	}
	if got := len(length.Tokenize(res.Text)); got > 110 {
		t.Fatalf("expected truncation to at most 110 tokens, got %d", got)
	}

	short := "just a few words"
	fc = &fakeClient{resp: &Response{Text: "  " + short + "  "}}
	res = NewGenerator(fc).Generate(context.Background(), Request{Tone: "calm", WordCount: 100})
	if !res.OK || res.Text != short {
		t.Fatalf("expected trimmed undershoot passthrough, got %#v", res)
	}
}

func TestGenerateUsesTokenOverride(t *testing.T) {
	fc := &fakeClient{resp: &Response{Text: "entry"}}
	NewGenerator(fc).Generate(context.Background(), Request{Tone: "calm", WordCount: 100, MaxTokens: 42})
	if fc.lastParams.MaxOutputTokens != 42 {
		t.Fatalf("override ignored: %d", fc.lastParams.MaxOutputTokens)
	}
}
