package typeref

import "strings"

// String serializes the Ref into its canonical dotted representation.
func (r *Ref) String() string {
	if r == nil {
		return ""
	}
	return join(r.Path)
}

func join(segments []string) string {
	return strings.Join(segments, ".")
}
