package capture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		in   string
		want string
	}{
		{"asha", "Asha"},
		{"ASHA RANI", "Asha Rani"},
		{"jean-luc", "Jean-luc"},
		{"o'brien", "O'brien"},
		{"dr. rajesh kumar", "Dr. Rajesh Kumar"},
		{"DR rajesh", "Dr. Rajesh"},
		{"Dr.", "Dr."},
		{"zoë", "Zoë"},
		{"élodie", "Élodie"},
		{"  asha   rani ", "Asha Rani"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, e.Normalize(tc.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	e := newTestEngine(t)

	for _, in := range []string{"asha", "JEAN-LUC picard", "o'brien", "dr. rajesh kumar", "łukasz"} {
		once := e.Normalize(in)
		assert.Equal(t, once, e.Normalize(once), "input %q", in)
	}
}

func TestNormalize_PreservesAcceptedTokens(t *testing.T) {
	e := newTestEngine(t)

	for _, c := range []string{"asha", "asha rani kumar", "JEAN-LUC o'brien", "josé garcía"} {
		require.NoError(t, e.Validate(c), "candidate %q", c)

		got := strings.Fields(e.Normalize(c))
		want := strings.Fields(c)
		require.Len(t, got, len(want))
		for i := range want {
			assert.True(t, strings.EqualFold(want[i], got[i]), "token %d: %q vs %q", i, want[i], got[i])
		}
	}
}
