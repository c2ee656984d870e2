package annotation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// subscriptRegex matches `<ns>.<Name>[<args>]`, capturing the full base, its
// last segment and the raw argument text.
var subscriptRegex = regexp.MustCompile(`(?s)^((?:[A-Za-z_][A-Za-z0-9_]*\.)*([A-Za-z_][A-Za-z0-9_]*))\s*\[(.*)\]$`)

var errUnbalanced = errors.New("unbalanced brackets")

// subscript is the parsed form of a textual container annotation.
type subscript struct {
	base string
	name string
	args []string
}

// parseSubscript parses a textual container annotation. It returns nil and
// no error for text without any bracket.
func parseSubscript(text string) (*subscript, error) {
	if !strings.ContainsAny(text, "[]") {
		return nil, nil
	}

	m := subscriptRegex.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("malformed subscript in %q", text)
	}

	args, err := splitArgs(m[3])
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", text, err)
	}
	return &subscript{base: m[1], name: m[2], args: args}, nil
}

// splitArgs splits argument text at top-level commas, honouring nested
// brackets. Empty text yields no arguments.
func splitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var args []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, errUnbalanced
			}
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalanced
	}
	args = append(args, s[start:])

	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return nil, fmt.Errorf("empty sub-type at position %d", i)
		}
		args[i] = arg
	}
	return args, nil
}

// isBareContainer reports whether text names a generic container without a
// subscript, e.g. "List" or "typing.Dict".
func isBareContainer(text string) bool {
	name := text
	if i := strings.LastIndex(text, "."); i >= 0 {
		name = text[i+1:]
	}
	_, ok := containerKind(name)
	return ok
}
