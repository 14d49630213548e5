package capture

import (
	"strings"
	"unicode"
)

// terminators end an extracted name.
const terminators = ",.!?;:"

// Extract pulls a name candidate out of text.
//
// When text contains an intro phrase ("my name is", "call me", ...) the
// candidate is the lowercased remainder up to the first punctuation mark,
// limited to the first maxTokens words. A period closing a title ("dr.") does
// not end the name. Without an intro phrase the whole trimmed text is the
// candidate. ok is false only when an intro phrase is followed by nothing.
func (e *Engine) Extract(text string) (candidate string, ok bool) {
	m := e.intro.FindStringSubmatchIndex(text)
	if m == nil {
		return strings.TrimSpace(text), true
	}
	if m[2] < 0 {
		return "", false
	}

	rest := strings.ToLower(text[m[2]:m[3]])
	rest = strings.TrimLeftFunc(rest, isLeadSeparator)
	rest = e.cutAtTerminator(rest)

	tokens := strings.Fields(rest)
	if len(tokens) == 0 {
		return "", false
	}
	if len(tokens) > e.maxTokens {
		tokens = tokens[:e.maxTokens]
	}
	return strings.Join(tokens, " "), true
}

// isLeadSeparator matches what may sit between an intro phrase and the name,
// as in "my name is: Asha" or "call me - Asha".
func isLeadSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ':' || r == '-' || r == '\u2013' || r == '\u2014'
}

func (e *Engine) cutAtTerminator(s string) string {
	for i, r := range s {
		if !strings.ContainsRune(terminators, r) {
			continue
		}
		if r == '.' && e.titles[lastWord(s[:i])] {
			continue
		}
		return s[:i]
	}
	return s
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
