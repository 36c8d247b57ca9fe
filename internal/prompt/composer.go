// Package prompt renders the instruction text sent to the model. The
// composer is a pure function of its inputs; example order is preserved.
package prompt

import (
	"fmt"
	"strings"
)

// Compose builds the generation instruction for one journal entry. The
// prompt always names the tone preset, states the approximate length and
// asks for the entry body only. When reference examples are given, each
// is embedded under a numbered label with triple-quote runs collapsed so
// example text cannot break the surrounding quoting.
func Compose(tone string, wordCount int, examples []string) string {
	parts := []string{
		fmt.Sprintf("Write a journal entry that very much focuses on the tone/style preset: %s.", tone),
		fmt.Sprintf("The entry must be approximately %d words long.", wordCount),
		"Generate only the journal entry text itself, without any introductory phrases like 'Here is a journal entry:' or similar. Do not include any titles or extra formatting beyond standard paragraph breaks if needed.",
	}

	if len(examples) > 0 {
		parts = append(parts, "\nHere are some examples of style and tone to guide you:")
		for i, ex := range examples {
			parts = append(parts, fmt.Sprintf("\nExample %d: \"%s\"", i+1, neutralize(ex)))
		}
		parts = append(parts, "\nBased on these examples, and keeping a similar style and tone, write the new journal entry:")
	} else {
		parts = append(parts, "\nWrite the new journal entry now, following all rules above:")
	}

	return strings.Join(parts, " ")
}

func neutralize(s string) string {
	s = strings.ReplaceAll(s, `"""`, `"`)
	s = strings.ReplaceAll(s, `'''`, `'`)
	return s
}
