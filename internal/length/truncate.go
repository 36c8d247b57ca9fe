package length

import "strings"

// Truncate cuts text down to roughly target words when it runs long.
// Length is measured in linguistic tokens here (see Tokenize), not the
// plain split that CountWords uses; the two conventions intentionally
// differ. If the token count is within target+maxOvershoot the text is
// returned untouched. Otherwise the first target tokens are joined with
// single spaces, which can leave punctuation space-separated from the
// preceding word; no sentence-boundary handling is attempted.
func Truncate(text string, target, maxOvershoot int) string {
	tokens := Tokenize(text)
	if len(tokens) <= target+maxOvershoot {
		return text
	}
	return strings.TrimSpace(strings.Join(tokens[:target], " "))
}

// Enforce applies the word-count contract to raw generated text: trim
// surrounding whitespace, accept anything inside the tolerance band or
// under the target (short output is never padded or re-prompted), and
// truncate anything that overshoots the band, allowing 10% slack over
// the target before cutting.
func Enforce(raw string, target int) string {
	text := strings.TrimSpace(raw)
	words := CountWords(text)
	v := Check(words, target, DefaultTolerance)
	if v.Adherent || words < target {
		return text
	}
	return Truncate(text, target, target/10)
}
