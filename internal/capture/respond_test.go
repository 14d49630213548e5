package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_Scenarios(t *testing.T) {
	e := newTestEngine(t)

	t.Run("bare intro yields valid name", func(t *testing.T) {
		res, out := e.Process("I am Asha")
		assert.Equal(t, ValidName, res.Category)
		assert.Equal(t, "asha", res.Candidate)
		assert.Equal(t, "Asha", res.Name)
		assert.NoError(t, res.Err)

		assert.Equal(t, "Asha", out.Parameters[ParamName])
		assert.Equal(t, "true", out.Parameters[ParamNameProvided])
		assert.Equal(t, []string{"Thank you, Dr. Asha! What would you like to know about Lipaglyn today?"}, out.Messages)
	})

	t.Run("refusal", func(t *testing.T) {
		res, out := e.Process("No thanks")
		assert.Equal(t, Refusal, res.Category)
		assertDeclined(t, out)
		assert.Contains(t, out.Messages[0], "I understand.")
		assert.Contains(t, out.Messages[0], "assist you with Lipaglyn studies and research?")
	})

	t.Run("greeting", func(t *testing.T) {
		res, out := e.Process("Hello!")
		assert.Equal(t, Greeting, res.Category)
		assertDeclined(t, out)
		assert.Equal(t, "Hello! Before we begin, may I know your name?", out.Messages[0])
	})

	t.Run("question is invalid", func(t *testing.T) {
		res, out := e.Process("What is Lipaglyn used for?")
		assert.Equal(t, Invalid, res.Category)
		assert.ErrorIs(t, res.Err, ErrSentence)
		assert.Equal(t, "What is Lipaglyn used for?", res.Candidate)
		assertDeclined(t, out)
		assert.Contains(t, out.Messages[0], "sharing your name is optional")
		assert.Contains(t, out.Messages[0], `"My name is Asha"`)
	})

	t.Run("title is extracted and normalized but blocked", func(t *testing.T) {
		res, out := e.Process("my name is Dr. Rajesh Kumar")
		assert.Equal(t, "dr. rajesh kumar", res.Candidate)
		assert.Equal(t, "Dr. Rajesh Kumar", e.Normalize(res.Candidate))
		assert.Equal(t, Invalid, res.Category)
		assert.ErrorIs(t, res.Err, ErrStructure)
		assertDeclined(t, out)
	})

	t.Run("empty input", func(t *testing.T) {
		res, out := e.Process("")
		assert.Equal(t, NoInput, res.Category)
		assert.True(t, out.Empty())
		assert.Nil(t, out.Parameters)
		assert.Nil(t, out.Messages)
	})

	t.Run("intro with nothing after", func(t *testing.T) {
		res, out := e.Process("my name is")
		assert.Equal(t, Invalid, res.Category)
		assert.ErrorIs(t, res.Err, ErrNoCandidate)
		assertDeclined(t, out)
	})
}

func TestProcess_NameProvidedOnlyForValidName(t *testing.T) {
	e := newTestEngine(t)

	inputs := []string{
		"I am Asha", "Asha", "hi", "no", "why?", "my name is", "Mr Smith",
		"call me Jean-Luc", "R2D2", "   ", "good evening, I am Asha",
	}
	for _, in := range inputs {
		res, out := e.Process(in)
		require.NotNil(t, out.Parameters, "input %q", in)
		name := out.Parameters[ParamName]
		provided := out.Parameters[ParamNameProvided]

		if res.Category == ValidName {
			assert.Equal(t, "true", provided, "input %q", in)
			assert.NotNil(t, name, "input %q", in)
		} else {
			assert.Equal(t, "false", provided, "input %q", in)
			assert.Nil(t, name, "input %q", in)
		}
		assert.Len(t, out.Messages, 1, "input %q", in)
	}
}

func TestRespond_UnknownCategoryIsInvalid(t *testing.T) {
	e := newTestEngine(t)
	out := e.Respond(Result{Category: Category("weird")})
	assertDeclined(t, out)
}

func assertDeclined(t *testing.T, out Output) {
	t.Helper()
	require.NotNil(t, out.Parameters)
	v, ok := out.Parameters[ParamName]
	assert.True(t, ok, "name key must be present")
	assert.Nil(t, v)
	assert.Equal(t, "false", out.Parameters[ParamNameProvided])
	require.Len(t, out.Messages, 1)
}
