package capture

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize title-cases each word of an accepted candidate: first letter
// upper, the rest lower. A title word such as "dr" or "dr." becomes "Dr.".
func (e *Engine) Normalize(candidate string) string {
	tokens := strings.Fields(candidate)
	for i, tok := range tokens {
		lower := strings.ToLower(tok)
		if t := strings.TrimSuffix(lower, "."); e.titles[t] {
			tokens[i] = capitalize(t) + "."
			continue
		}
		tokens[i] = capitalize(lower)
	}
	return strings.Join(tokens, " ")
}

// capitalize upper-cases the first rune of an already lowercased word.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
