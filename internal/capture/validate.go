package capture

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation failures, in the order the rules are checked.
var (
	ErrNoCandidate = errors.New("no name follows the intro phrase")
	ErrEmpty       = errors.New("candidate is empty")
	ErrSentence    = errors.New("candidate reads as a sentence or question")
	ErrLength      = errors.New("candidate length out of range")
	ErrStructure   = errors.New("candidate is not shaped like a name")
	ErrBlocklisted = errors.New("candidate contains a blocked word")
)

// sentenceChars never appear in a name.
const sentenceChars = `,:;@/\`

// Validate returns nil when candidate is acceptable as a name, or the first
// rule it breaks.
func (e *Engine) Validate(candidate string) error {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ErrEmpty
	}
	if err := e.checkSentence(candidate); err != nil {
		return err
	}

	if n := utf8.RuneCountInString(candidate); n < e.minLength || n > e.maxLength {
		return fmt.Errorf("%w: %d characters, want %d-%d", ErrLength, n, e.minLength, e.maxLength)
	}

	if !e.name.MatchString(candidate) {
		return ErrStructure
	}

	for _, w := range bareWords(candidate) {
		if e.blocklist[w] {
			return fmt.Errorf("%w: %q", ErrBlocklisted, w)
		}
	}
	return nil
}

func (e *Engine) checkSentence(candidate string) error {
	if strings.Contains(candidate, "?") {
		return fmt.Errorf("%w: contains a question mark", ErrSentence)
	}
	if n := len(strings.Fields(candidate)); n >= e.sentenceTokens {
		return fmt.Errorf("%w: %d words", ErrSentence, n)
	}
	if strings.ContainsAny(candidate, sentenceChars) || strings.IndexFunc(candidate, unicode.IsDigit) >= 0 {
		return fmt.Errorf("%w: contains punctuation or digits", ErrSentence)
	}
	if w := leadingWord(candidate); e.interrogatives[w] {
		return fmt.Errorf("%w: starts with %q", ErrSentence, w)
	}
	return nil
}

// leadingWord is the lowercased run of letters that opens s, ignoring
// leading whitespace. "What's up" yields "what".
func leadingWord(s string) string {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	if end < 0 {
		end = len(s)
	}
	return strings.ToLower(s[:end])
}

// bareWords splits a name into lowercased words at spaces, hyphens and
// apostrophes: "Jean-Luc O'Brien" yields jean, luc, o, brien.
func bareWords(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '\''
	})
}

// Reason maps a validation error to a short label for logs and metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoCandidate):
		return "no_candidate"
	case errors.Is(err, ErrEmpty):
		return "empty"
	case errors.Is(err, ErrSentence):
		return "sentence"
	case errors.Is(err, ErrLength):
		return "length"
	case errors.Is(err, ErrStructure):
		return "structure"
	case errors.Is(err, ErrBlocklisted):
		return "blocklisted"
	default:
		return "other"
	}
}
