package typeref

// Ref is the structured representation of a textual type reference.
type Ref struct {
	Path []string
}

// IsQualified reports whether the reference carries a package path.
func (r *Ref) IsQualified() bool {
	return r != nil && len(r.Path) > 1
}

// Prefixes returns every package path that could own the reference, longest
// first. For `a.b.C` it returns `a.b` and `a`.
func (r *Ref) Prefixes() []string {
	if !r.IsQualified() {
		return nil
	}
	prefixes := make([]string, 0, len(r.Path)-1)
	for i := len(r.Path) - 1; i > 0; i-- {
		prefixes = append(prefixes, join(r.Path[:i]))
	}
	return prefixes
}
