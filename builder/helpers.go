package builder

import (
	"github.com/comalice/storetree"
)

// New creates a module definition configured by opts.
func New(opts ...Option) *storetree.RawModule {
	raw := storetree.NewRawModule()
	for _, opt := range opts {
		opt(raw)
	}
	return raw
}

// NewNamespaced creates a namespaced module definition.
func NewNamespaced(opts ...Option) *storetree.RawModule {
	return New(append([]Option{Namespaced()}, opts...)...)
}

// Composite creates a module with the given children keyed by name.
func Composite(children map[string]*storetree.RawModule, opts ...Option) *storetree.RawModule {
	raw := New(opts...)
	for key, child := range children {
		raw.AddModule(key, child)
	}
	return raw
}

// Option pattern for configuring module definitions
type Option func(*storetree.RawModule)

// Namespaced puts the module's handlers under its key.
func Namespaced() Option {
	return func(r *storetree.RawModule) { r.Namespaced = true }
}

// State sets a literal initial state shared by every module built from the
// definition.
func State(state map[string]any) Option {
	return func(r *storetree.RawModule) { r.State = state }
}

// StateFunc sets a factory called once per module built from the definition.
func StateFunc(fn func() map[string]any) Option {
	return func(r *storetree.RawModule) { r.StateFunc = fn }
}

func Getter(name string, fn storetree.GetterFunc) Option {
	return func(r *storetree.RawModule) { r.AddGetter(name, fn) }
}

func Mutation(name string, fn storetree.MutationFunc) Option {
	return func(r *storetree.RawModule) { r.AddMutation(name, fn) }
}

func Action(name string, fn storetree.ActionFunc) Option {
	return func(r *storetree.RawModule) { r.AddAction(name, fn) }
}

// RootAction registers an action in the global namespace even when the
// module is namespaced.
func RootAction(name string, fn storetree.ActionFunc) Option {
	return func(r *storetree.RawModule) {
		r.AddAction(name, storetree.ActionDef{Handler: fn, Root: true})
	}
}

// Child nests child under key.
func Child(key string, child *storetree.RawModule) Option {
	return func(r *storetree.RawModule) { r.AddModule(key, child) }
}
