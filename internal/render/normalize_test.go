package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only blanks", "\n \n\t\n", ""},
		{"adds final newline", "a", "a\n"},
		{"trailing whitespace", "a  \nb\t\n", "a\nb\n"},
		{"collapses blank runs", "a\n\n\n\nb\n", "a\n\nb\n"},
		{"no blank after open brace", "{\n\n    a\n}\n", "{\n    a\n}\n"},
		{"no blank before close brace", "{\n    a\n\n\n}\n", "{\n    a\n}\n"},
		{"leading blanks", "\n\n\nnamespace X\n", "namespace X\n"},
		{"trailing blanks", "a\n\n\n", "a\n"},
		{"crlf input", "a\r\n\r\nb\r\n", "a\n\nb\n"},
		{"lone cr", "a\rb", "a\nb\n"},
		{"whitespace only line inside block", "{\n  \n  a\n  \n}", "{\n  a\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Normalize([]byte(tt.input), "\n")))
		})
	}
}

func TestNormalizeLineEnding(t *testing.T) {
	got := Normalize([]byte("a\n\nb\n"), "\r\n")
	assert.Equal(t, "a\r\n\r\nb\r\n", string(got))

	assert.Equal(t, "a\nb\n", string(Normalize([]byte("a\r\nb"), "")))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"namespace A\n{\n\n\n    class B\n    {\n\n    }\n\n}\n\n",
		"  \t\n{\r\n  }\r\n\r\n\r\n",
		"a {\n\n}\n\n\n}\n{\n",
		"/// <summary>   \n/// text\t\n/// </summary>\n",
		strings.Repeat("line\n\n", 5),
	}

	for _, ending := range []string{"\n", "\r\n"} {
		for _, in := range inputs {
			once := Normalize([]byte(in), ending)
			twice := Normalize(once, ending)
			assert.Equal(t, string(once), string(twice), "input %q", in)
		}
	}
}
