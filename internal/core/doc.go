// Package core implements the module tree that backs a centralized store:
// path-addressed registration and removal of modules, namespace prefix
// computation, and in-place hot update of module definitions.
//
// The tree is single-threaded by contract. It performs no locking and every
// operation is a bounded, synchronous walk from the root; callers that share
// a tree across goroutines must serialize access themselves.
//
// Registration and update validate each node before committing it, but there
// is no rollback: when a nested module fails, the nodes committed before it
// stay in the tree.
package core
