package extensibility

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/agnivade/levenshtein"

	"github.com/comalice/storetree/internal/primitives"
)

// ErrHandlerNotRegistered is returned when a manifest names an unknown handler.
var ErrHandlerNotRegistered = errors.New("handler not registered")

// HandlerRegistry holds the compiled handlers that manifests refer to by name.
type HandlerRegistry struct {
	getters   map[string]primitives.GetterFunc
	mutations map[string]primitives.MutationFunc
	actions   map[string]primitives.ActionFunc
}

// NewHandlerRegistry creates an empty registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		getters:   make(map[string]primitives.GetterFunc),
		mutations: make(map[string]primitives.MutationFunc),
		actions:   make(map[string]primitives.ActionFunc),
	}
}

// RegisterGetter registers a getter under name. Duplicate names panic.
func (r *HandlerRegistry) RegisterGetter(name string, fn primitives.GetterFunc) {
	if _, exists := r.getters[name]; exists {
		panic(fmt.Sprintf("getter handler with name '%s' already registered", name))
	}
	slog.Debug("Registering getter handler.", "name", name)
	r.getters[name] = fn
}

// RegisterMutation registers a mutation under name. Duplicate names panic.
func (r *HandlerRegistry) RegisterMutation(name string, fn primitives.MutationFunc) {
	if _, exists := r.mutations[name]; exists {
		panic(fmt.Sprintf("mutation handler with name '%s' already registered", name))
	}
	slog.Debug("Registering mutation handler.", "name", name)
	r.mutations[name] = fn
}

// RegisterAction registers an action under name. Duplicate names panic.
func (r *HandlerRegistry) RegisterAction(name string, fn primitives.ActionFunc) {
	if _, exists := r.actions[name]; exists {
		panic(fmt.Sprintf("action handler with name '%s' already registered", name))
	}
	slog.Debug("Registering action handler.", "name", name)
	r.actions[name] = fn
}

// Resolve turns a manifest tree into a raw module tree, looking up every
// handler name. The manifest's state literal is copied for each module built
// from the result, so trees never share state through it.
func (r *HandlerRegistry) Resolve(m *ModuleManifest) (*primitives.RawModule, error) {
	return r.resolve(primitives.Path{}, m)
}

func (r *HandlerRegistry) resolve(path primitives.Path, m *ModuleManifest) (*primitives.RawModule, error) {
	raw := primitives.NewRawModule()
	if m == nil {
		return raw, nil
	}
	raw.Namespaced = m.Namespaced
	if m.State != nil {
		literal := m.State
		raw.StateFunc = func() map[string]any { return maps.Clone(literal) }
	}

	for _, local := range primitives.SortedKeys(m.Getters) {
		name := m.Getters[local]
		fn, ok := r.getters[name]
		if !ok {
			return nil, notRegistered("getter", name, local, path, r.getters)
		}
		raw.AddGetter(local, fn)
	}
	for _, local := range primitives.SortedKeys(m.Mutations) {
		name := m.Mutations[local]
		fn, ok := r.mutations[name]
		if !ok {
			return nil, notRegistered("mutation", name, local, path, r.mutations)
		}
		raw.AddMutation(local, fn)
	}
	for _, local := range primitives.SortedKeys(m.Actions) {
		ref := m.Actions[local]
		fn, ok := r.actions[ref.Handler]
		if !ok {
			return nil, notRegistered("action", ref.Handler, local, path, r.actions)
		}
		if ref.Root {
			raw.AddAction(local, primitives.ActionDef{Handler: fn, Root: true})
		} else {
			raw.AddAction(local, fn)
		}
	}

	for _, key := range primitives.SortedKeys(m.Modules) {
		child, err := r.resolve(path.Child(key), m.Modules[key])
		if err != nil {
			return nil, err
		}
		raw.AddModule(key, child)
	}
	return raw, nil
}

func notRegistered[V any](kind, name, local string, path primitives.Path, known map[string]V) error {
	where := "root module"
	if !path.IsRoot() {
		where = fmt.Sprintf("module %q", path.String())
	}
	err := fmt.Errorf("%w: %s %q (bound to %q in %s)", ErrHandlerNotRegistered, kind, name, local, where)
	if hint := closest(name, primitives.SortedKeys(known)); hint != "" {
		err = fmt.Errorf("%w; did you mean %q?", err, hint)
	}
	return err
}

// closest returns the candidate nearest to name by edit distance, or "" when
// none is within a third of name's length.
func closest(name string, candidates []string) string {
	best, bestDist := "", len(name)/3+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
