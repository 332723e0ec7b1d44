package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/comalice/storetree/internal/primitives"
)

// ModuleTree owns the root Module and resolves every other module by walking
// parent to child edges from it. There is no global index.
type ModuleTree struct {
	root     *Module
	strict   bool
	logger   *slog.Logger
	reporter Reporter
}

// New builds a tree from the root definition. Modules declared in raw are
// static: Unregister will not remove them.
func New(raw *primitives.RawModule, opts ...Option) (*ModuleTree, error) {
	t := &ModuleTree{strict: true}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.reporter == nil {
		t.reporter = NewLogReporter(t.logger)
	}

	if err := t.register(primitives.Path{}, raw, false); err != nil {
		return nil, err
	}
	return t, nil
}

// Root returns the root module.
func (t *ModuleTree) Root() *Module {
	return t.root
}

// Strict reports whether validation and warnings are enabled.
func (t *ModuleTree) Strict() bool {
	return t.strict
}

// Get resolves path from the root. A missing segment is ErrModuleNotFound.
func (t *ModuleTree) Get(path primitives.Path) (*Module, error) {
	m := t.root
	for i, key := range path {
		child := m.GetChild(key)
		if child == nil {
			return nil, fmt.Errorf("%w: %q (no module %q under %q)",
				ErrModuleNotFound, path.String(), key, path[:i].String())
		}
		m = child
	}
	return m, nil
}

// GetNamespace returns the prefix for names registered under path: the keys
// of every namespaced module along the path, each followed by "/".
func (t *ModuleTree) GetNamespace(path primitives.Path) (string, error) {
	m := t.root
	namespace := ""
	for i, key := range path {
		m = m.GetChild(key)
		if m == nil {
			return "", fmt.Errorf("%w: %q (no module %q under %q)",
				ErrModuleNotFound, path.String(), key, path[:i].String())
		}
		if m.Namespaced() {
			namespace += key + "/"
		}
	}
	return namespace, nil
}

// Register validates raw, builds a module from it and installs it at path,
// then registers raw's nested modules beneath it depth first in key order.
// The parent of path must already be registered. An empty path replaces the
// root. Modules are registered as runtime modules unless WithRuntime(false)
// is given.
func (t *ModuleTree) Register(path primitives.Path, raw *primitives.RawModule, opts ...RegisterOption) error {
	cfg := registerConfig{runtime: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return t.register(path, raw, cfg.runtime)
}

func (t *ModuleTree) register(path primitives.Path, raw *primitives.RawModule, runtime bool) error {
	if raw == nil {
		return fmt.Errorf("%w at %q", ErrNilDefinition, path.String())
	}
	if t.strict {
		if err := primitives.AssertRawModule(path, raw); err != nil {
			return err
		}
	}

	var parent *Module
	if !path.IsRoot() {
		p, err := t.Get(path.Parent())
		if err != nil {
			return fmt.Errorf("register %q: %w", path.String(), err)
		}
		parent = p
	}

	m := NewModule(raw, runtime)
	if parent == nil {
		t.root = m
	} else {
		parent.AddChild(path.Key(), m)
	}
	t.logger.Debug("Registered module.", "path", path.String(), "id", m.ID(), "runtime", runtime)

	for _, key := range primitives.SortedKeys(raw.Modules) {
		if err := t.register(path.Child(key), raw.Modules[key], runtime); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes the runtime module at path. A missing module is reported
// as a warning and a static module is silently kept; neither is an error.
func (t *ModuleTree) Unregister(path primitives.Path) error {
	if path.IsRoot() {
		return ErrRootPath
	}
	parent, err := t.Get(path.Parent())
	if err != nil {
		return fmt.Errorf("unregister %q: %w", path.String(), err)
	}

	key := path.Key()
	child := parent.GetChild(key)
	if child == nil {
		t.warn(Warning{
			Kind:    WarnUnregisterMissing,
			Path:    path,
			Message: fmt.Sprintf("[storetree] trying to unregister module '%s', which is not registered", key),
		})
		return nil
	}
	if !child.Runtime() {
		return nil
	}

	parent.RemoveChild(key)
	t.logger.Debug("Unregistered module.", "path", path.String(), "id", child.ID())
	return nil
}

// IsRegistered reports whether a module exists at path. It is false when the
// parent itself is missing, and always true for the root.
func (t *ModuleTree) IsRegistered(path primitives.Path) bool {
	if path.IsRoot() {
		return t.root != nil
	}
	parent, err := t.Get(path.Parent())
	if err != nil {
		return false
	}
	return parent.HasChild(path.Key())
}

// Update hot-swaps the functional surface of every module named by the new
// root definition, keeping state and children. The first key the live tree
// does not have is reported and ends the update of that level: earlier
// siblings stay updated, later ones are left as they were. The structure
// only grows via Register.
func (t *ModuleTree) Update(raw *primitives.RawModule) error {
	if raw == nil {
		return ErrNilDefinition
	}
	return t.update(primitives.Path{}, t.root, raw)
}

func (t *ModuleTree) update(path primitives.Path, target *Module, raw *primitives.RawModule) error {
	if t.strict {
		if err := primitives.AssertRawModule(path, raw); err != nil {
			return err
		}
	}

	prev := target.Version()
	target.Update(raw)
	t.logger.Debug("Updated module.", "path", path.String(), "from", prev, "to", target.Version())

	for _, key := range primitives.SortedKeys(raw.Modules) {
		childPath := path.Child(key)
		child := target.GetChild(key)
		if child == nil {
			t.warn(Warning{
				Kind:    WarnHotUpdateNewModule,
				Path:    childPath,
				Message: fmt.Sprintf("[storetree] trying to add a new module '%s' on hot reloading, manual reload is needed", key),
			})
			// Siblings after key in sorted order keep their old definition.
			return nil
		}
		childRaw := raw.Modules[key]
		if childRaw == nil {
			return fmt.Errorf("%w at %q", ErrNilDefinition, childPath.String())
		}
		if err := t.update(childPath, child, childRaw); err != nil {
			return err
		}
	}
	return nil
}

// ErrSkipChildren can be returned by a WalkFunc to skip a module's subtree.
var ErrSkipChildren = errors.New("skip children")

// WalkFunc visits one module during Walk.
type WalkFunc func(path primitives.Path, m *Module) error

// Walk visits every module depth first, parents before children, children in
// key order. A non-nil error other than ErrSkipChildren stops the walk.
func (t *ModuleTree) Walk(fn WalkFunc) error {
	return walk(primitives.Path{}, t.root, fn)
}

func walk(path primitives.Path, m *Module, fn WalkFunc) error {
	if err := fn(path, m); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}
	for _, key := range m.ChildKeys() {
		if err := walk(path.Child(key), m.GetChild(key), fn); err != nil {
			return err
		}
	}
	return nil
}

func (t *ModuleTree) warn(w Warning) {
	if !t.strict {
		return
	}
	t.reporter.Report(w)
}
