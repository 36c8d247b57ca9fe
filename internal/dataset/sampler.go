package dataset

import (
	"math/rand"

	"journalgen/internal/logger"
)

// Sample returns up to count reference bodies matching tag, drawn
// uniformly without replacement. Every call draws fresh so repeated
// sampling for the same tag varies the examples a prompt sees.
//
// Degenerate inputs never error: a non-positive count, an unknown tag,
// a label that cannot be coerced to booleans, or an empty match set all
// yield an empty result. Fewer matches than requested returns them all.
func Sample(t *Table, tag string, count int, rng *rand.Rand) []string {
	if count <= 0 {
		return nil
	}
	if !t.HasTag(tag) {
		logger.Warnf("no label for tag %q in corpus, skipping examples", tag)
		return nil
	}
	matches, ok := t.Matches(tag)
	if !ok {
		logger.Warnf("label for tag %q is not boolean-coercible, skipping examples", tag)
		return nil
	}
	if len(matches) == 0 {
		logger.Infof("no entries found for tag %q", tag)
		return nil
	}
	if len(matches) <= count {
		if len(matches) < count {
			logger.Warnf("only %d entries for tag %q, requested %d; using all", len(matches), tag, count)
		}
		return matches
	}
	out := make([]string, 0, count)
	for _, i := range rng.Perm(len(matches))[:count] {
		out = append(out, matches[i])
	}
	return out
}
