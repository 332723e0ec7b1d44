// Package primitives provides the foundational data structures for the
// module tree: paths, per-module state, raw module definitions, handler
// shapes and their resolved forms, and definition validation.
//
// Core invariants:
// - A Definition is immutable once built; hot updates produce a new one.
// - Handler references are resolved once, when a Definition is built.
// - State is owned by a module and never replaced by a definition update.
package primitives
