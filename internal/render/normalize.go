package render

import (
	"strings"
)

// Normalize is the terminal whitespace pass applied to every rendered file:
//   - line endings are unified to lineEnding
//   - trailing whitespace is removed from each line
//   - runs of blank lines collapse to one
//   - no blank line follows an opening brace or precedes a closing brace
//   - leading blank lines are dropped and the text ends with one line ending
//
// Normalize(Normalize(x)) == Normalize(x) for any x.
func Normalize(text []byte, lineEnding string) []byte {
	if lineEnding == "" {
		lineEnding = "\n"
	}
	s := strings.ReplaceAll(string(text), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\f\v")

		if line == "" {
			if len(out) == 0 {
				continue
			}
			prev := out[len(out)-1]
			if prev == "" || strings.HasSuffix(prev, "{") {
				continue
			}
			out = append(out, line)
			continue
		}

		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "}") && len(out) > 0 && out[len(out)-1] == "" {
			out = out[:len(out)-1]
		}
		out = append(out, line)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(out, lineEnding) + lineEnding)
}
