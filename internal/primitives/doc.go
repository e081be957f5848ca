// Package primitives provides the foundational data structures for the SKU selection graph.
//
// Everything here is a plain value type: catalog items, dimensions, selections, actions and
// the canonical keys that identify them. The graph builder and interpreter in internal/core
// are expressed entirely in these terms.
//
// Core invariants:
//   - Equal selections (as key/value sets) always hash to the same Key, regardless of the
//     order in which the dimensions were inserted.
//   - A selection produced by the builder names every declared dimension; Unset marks a
//     dimension without a chosen value.
//   - Values are never mutated after construction.
package primitives
