// Package annotation defines the declared-annotation sum type and the
// classifier that reduces every annotation to a Plain or a Parameterized
// one before matching.
//
// Three dialects are accepted: live Plain types, live Parameterized
// containers, and Textual annotations such as "dict[str, int]" or
// "app.models.User", which are parsed and resolved through the registry.
package annotation
