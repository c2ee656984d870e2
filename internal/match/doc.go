// Package match implements the structural matchers that compare a runtime
// value against a classified annotation: the builtin (plain) matcher, which
// accepts subclasses, and the parameterized matcher, which walks mappings,
// sequences and fixed-size tuples and requires exact element types.
package match
