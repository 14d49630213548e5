package capture

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Accepts(t *testing.T) {
	e := newTestEngine(t)

	names := []string{
		"Al",
		"Asha",
		"asha rani kumar",
		"Jean-Luc",
		"O'Brien",
		"José García",
		"Zoë",
		"Łukasz",
		"Whichard",
		strings.Repeat("a", 40),
	}
	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			assert.NoError(t, e.Validate(n))
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"blank", "   ", ErrEmpty},
		{"question", "What is Lipaglyn used for?", ErrSentence},
		{"five words", "a b c d e", ErrSentence},
		{"comma", "Asha, Rani", ErrSentence},
		{"at sign", "asha@example", ErrSentence},
		{"slash", "and/or", ErrSentence},
		{"backslash", `asha\rani`, ErrSentence},
		{"digit", "R2D2", ErrSentence},
		{"interrogative", "Where Asha", ErrSentence},
		{"interrogative after spaces", "  how", ErrSentence},
		{"interrogative contraction", "What's up", ErrSentence},
		{"one char", "A", ErrLength},
		{"41 chars", strings.Repeat("a", 41), ErrLength},
		{"four words", "Asha Rani Kumar Singh", ErrStructure},
		{"double hyphen", "Jean--Luc", ErrStructure},
		{"two hyphens", "Jean-Luc-Paul", ErrStructure},
		{"leading hyphen", "-Asha", ErrStructure},
		{"double space", "Asha  Rani", ErrStructure},
		{"title with period", "dr. rajesh kumar", ErrStructure},
		{"exclamation", "Asha!", ErrStructure},
		{"non-latin", "Алиса", ErrStructure},
		{"honorific", "Mr Smith", ErrBlocklisted},
		{"product", "Lipaglyn", ErrBlocklisted},
		{"uppercase blocked", "TABLETS", ErrBlocklisted},
		{"hyphen part blocked", "Jean-Doctor", ErrBlocklisted},
		{"apostrophe part blocked", "O'Dose", ErrBlocklisted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := e.Validate(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_LengthBoundaries(t *testing.T) {
	e := newTestEngine(t)

	assert.ErrorIs(t, e.Validate("A"), ErrLength)
	assert.NoError(t, e.Validate("Al"))
	assert.NoError(t, e.Validate(strings.Repeat("b", 40)))
	assert.ErrorIs(t, e.Validate(strings.Repeat("b", 41)), ErrLength)

	// Length counts characters, not bytes.
	assert.NoError(t, e.Validate(strings.Repeat("\u00e9", 40)))
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNoCandidate, "no_candidate"},
		{ErrEmpty, "empty"},
		{ErrSentence, "sentence"},
		{ErrLength, "length"},
		{ErrStructure, "structure"},
		{ErrBlocklisted, "blocklisted"},
		{errors.New("boom"), "other"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Reason(tc.err))
	}

	e := newTestEngine(t)
	assert.Equal(t, "blocklisted", Reason(e.Validate("Mr Smith")))
}
