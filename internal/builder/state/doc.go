// Package state holds the reactive primitives of the builder.
//
// A Cell is an independently addressable value with a version counter. A
// Derived value declares the cells (or other derived values) it reads and is
// recomputed only when the version of one of those inputs has moved since
// its last computation. Inputs form a DAG; a derived value can never be
// declared before its inputs exist, so cycles cannot be expressed.
//
// Updates are synchronous: when Update returns, every listener has run and
// every derived value read afterwards reflects the new value.
package state
