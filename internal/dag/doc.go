// Package dag provides a small directed graph used to order declarations
// that depend on each other, such as classes and the classes they extend.
// It detects cycles and yields a deterministic topological order.
package dag
