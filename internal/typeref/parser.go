package typeref

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single identifier segment of a reference.
var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse creates a new Ref by parsing its canonical string representation.
// Surrounding whitespace is ignored.
func Parse(raw string) (*Ref, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("type reference cannot be empty")
	}

	ref := &Ref{}
	for _, segment := range strings.Split(raw, ".") {
		if segment == "" {
			return nil, fmt.Errorf("type reference %q contains an empty segment", raw)
		}
		if !segmentRegex.MatchString(segment) {
			return nil, fmt.Errorf("invalid type reference segment: %q", segment)
		}
		ref.Path = append(ref.Path, segment)
	}

	return ref, nil
}
