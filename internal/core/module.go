package core

import (
	"github.com/google/uuid"

	"github.com/comalice/storetree/internal/primitives"
)

// Module is one node of the tree: a state slice, the resolved functional
// surface of its definition, and the children it exclusively owns.
// Children never reference their parent.
type Module struct {
	id       string
	runtime  bool
	state    *primitives.State
	def      primitives.Definition
	version  string
	children map[string]*Module
}

// NewModule builds a node from raw. The state source is evaluated once here.
// No validation is performed; that is the tree's job.
func NewModule(raw *primitives.RawModule, runtime bool) *Module {
	def := primitives.NewDefinition(raw)
	return &Module{
		id:       uuid.NewString(),
		runtime:  runtime,
		state:    raw.NewState(),
		def:      def,
		version:  primitives.ComputeVersion(def),
		children: make(map[string]*Module),
	}
}

// ID returns the unique identity assigned at construction.
func (m *Module) ID() string { return m.id }

// Runtime reports whether the module was registered dynamically.
func (m *Module) Runtime() bool { return m.runtime }

// State returns the module's own state. Update never replaces it.
func (m *Module) State() *primitives.State { return m.state }

// Namespaced is read from the current definition, so Update can change it.
func (m *Module) Namespaced() bool { return m.def.Namespaced() }

// Definition returns the current definition snapshot.
func (m *Module) Definition() primitives.Definition { return m.def }

// Version returns the version of the current definition.
func (m *Module) Version() string { return m.version }

// AddChild installs child at key, replacing any existing entry.
func (m *Module) AddChild(key string, child *Module) {
	m.children[key] = child
}

// RemoveChild drops the subtree at key. Absent keys are ignored.
func (m *Module) RemoveChild(key string) {
	delete(m.children, key)
}

// GetChild returns the child at key, or nil.
func (m *Module) GetChild(key string) *Module {
	return m.children[key]
}

// HasChild reports whether a child exists at key.
func (m *Module) HasChild(key string) bool {
	_, ok := m.children[key]
	return ok
}

// ChildKeys returns the child keys in sorted order.
func (m *Module) ChildKeys() []string {
	return primitives.SortedKeys(m.children)
}

// Update swaps the functional surface in place: namespaced always, and
// getters, mutations and actions only where raw declares them. State,
// children and the runtime flag are untouched.
func (m *Module) Update(raw *primitives.RawModule) {
	m.def = m.def.Merge(raw)
	m.version = primitives.ComputeVersion(m.def)
}

// ForEachChild calls fn for every child in sorted key order.
func (m *Module) ForEachChild(fn func(child *Module, key string)) {
	for _, key := range m.ChildKeys() {
		fn(m.children[key], key)
	}
}

func (m *Module) ForEachGetter(fn func(getter primitives.GetterFunc, name string)) {
	m.def.ForEachGetter(fn)
}

func (m *Module) ForEachMutation(fn func(mutation primitives.MutationFunc, name string)) {
	m.def.ForEachMutation(fn)
}

func (m *Module) ForEachAction(fn func(action primitives.Action, name string)) {
	m.def.ForEachAction(fn)
}
