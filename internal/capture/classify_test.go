package capture

import (
	"testing"

	"github.com/hritik3345/LIPA-Name/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		in   string
		want Category
	}{
		{"Hello!", Greeting},
		{"hi", Greeting},
		{"Hey there", Greeting},
		{"HIYA", Greeting},
		{"Greetings, friend", Greeting},
		{"good morning", Greeting},
		{"Good   evening doc", Greeting},
		{"hi, no thanks", Greeting},
		{"Hello, why do you need it?", Greeting},

		{"No thanks", Refusal},
		{"I don't want to", Refusal},
		{"I don\u2019t want to", Refusal},
		{"I'd rather not", Refusal},
		{"I do not", Refusal},
		{"I won't", Refusal},
		{"Will not", Refusal},
		{"skip", Refusal},
		{"not now", Refusal},
		{"why?", Refusal},
		{"What for", Refusal},
		{"I'm not comfortable", Refusal},
		{"keep it private please", Refusal},

		{"I am Asha", Proceed},
		{"Asha", Proceed},
		{"No\u00e9", Proceed},
		{"Noah", Proceed},
		{"Hiroshi", Proceed},
		{"Shirley", Proceed},
		{"Skipper", Proceed},
		{"Heyward", Proceed},
		{"What is Lipaglyn used for?", Proceed},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, e.Classify(tc.in))
		})
	}
}

func TestClassify_GreetingWinsOverRefusal(t *testing.T) {
	e := newTestEngine(t)
	lex, err := lexicon.Default()
	require.NoError(t, err)

	for _, g := range lex.Greetings {
		for _, r := range lex.Refusals.All() {
			for _, text := range []string{g + " " + r, r + ", " + g} {
				assert.Equal(t, Greeting, e.Classify(text), "text %q", text)
			}
		}
	}
}

func TestClassify_RefusalWithoutGreeting(t *testing.T) {
	e := newTestEngine(t)
	lex, err := lexicon.Default()
	require.NoError(t, err)

	for _, r := range lex.Refusals.All() {
		for _, text := range []string{r, "well, " + r + " thanks", "Asha? " + r} {
			assert.Equal(t, Refusal, e.Classify(text), "text %q", text)
		}
	}
}
