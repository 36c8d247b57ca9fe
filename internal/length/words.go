package length

import "strings"

// DefaultTolerance is the allowed fractional deviation from the target
// word count before an entry is considered off-length.
const DefaultTolerance = 0.50

// Verdict reports how a generated text's word count relates to its target.
type Verdict struct {
	Words     int
	Target    int
	Tolerance float64
	Adherent  bool
	// Deviation is the signed fraction (words - target) / target,
	// or 0 when the target itself is 0.
	Deviation float64
}

// CountWords counts whitespace-delimited tokens. This is deliberately a
// plain split, not linguistic tokenization; adherence decisions are made
// on these counts.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Check compares an actual word count against a target within a
// fractional tolerance band (inclusive on both ends).
func Check(words, target int, tolerance float64) Verdict {
	v := Verdict{Words: words, Target: target, Tolerance: tolerance}
	if target == 0 {
		v.Adherent = words == 0
		return v
	}
	lower := float64(target) * (1 - tolerance)
	upper := float64(target) * (1 + tolerance)
	v.Adherent = float64(words) >= lower && float64(words) <= upper
	v.Deviation = float64(words-target) / float64(target)
	return v
}
