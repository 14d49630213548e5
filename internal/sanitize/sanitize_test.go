package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain unchanged", "I am Asha", "I am Asha"},
		{"whitespace collapsed", "  my   name\tis \n Asha  ", "my name is Asha"},
		{"whitespace only", " \t\n ", ""},
		{"tags stripped", "<b>Asha</b> <i>Rani</i>", "Asha Rani"},
		{"line break separates words", "Asha<br>Rani", "Asha Rani"},
		{"script dropped", "<script>alert(1)</script>Asha", "Asha"},
		{"numeric entity", "O&#39;Brien", "O'Brien"},
		{"named entity", "Tom &amp; Jerry", "Tom & Jerry"},
		{"bare ampersand kept", "Tom & Jerry", "Tom & Jerry"},
		{"curly apostrophe folded", "O\u2019Brien", "O'Brien"},
		{"modifier apostrophe folded", "Don\u02bct", "Don't"},
		{"decomposed accent composed", "Jose\u0301", "Jos\u00e9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Text(tc.in))
		})
	}
}
