package length

import "unicode"

// Tokenize splits text into words and punctuation as separate tokens.
// Runs of letters and digits form one token; every other non-space rune
// is a token of its own, so "Stop, now." becomes
// ["Stop" "," "now" "."]. This is a rougher cut than a full linguistic
// tokenizer (contractions come apart at the apostrophe), which is
// acceptable for the truncation budget it feeds.
func Tokenize(text string) []string {
	var tokens []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, string(word))
			word = word[:0]
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word = append(word, r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}
