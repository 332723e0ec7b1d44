package primitives

// RawModule is the caller-supplied description of a module before it is
// wrapped into a tree node.
//
// Getters, Mutations and Actions map local names to handler references whose
// shapes are checked by AssertRawModule. Modules is consumed at registration
// time only; the tree does not keep it for navigation.
type RawModule struct {
	Namespaced bool                  `json:"namespaced,omitempty" yaml:"namespaced,omitempty"`
	State      map[string]any        `json:"state,omitempty" yaml:"state,omitempty"`
	StateFunc  func() map[string]any `json:"-" yaml:"-"`
	Getters    map[string]any        `json:"-" yaml:"-"`
	Mutations  map[string]any        `json:"-" yaml:"-"`
	Actions    map[string]any        `json:"-" yaml:"-"`
	Modules    map[string]*RawModule `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// NewRawModule creates an empty raw module.
func NewRawModule() *RawModule {
	return &RawModule{}
}

// NewState evaluates the state source once. StateFunc wins over State.
// A literal State map is shared, not copied, by every module built from r.
func (r *RawModule) NewState() *State {
	if r.StateFunc != nil {
		return NewState(r.StateFunc())
	}
	return NewState(r.State)
}

// WithNamespaced sets the namespaced flag.
func (r *RawModule) WithNamespaced(namespaced bool) *RawModule {
	r.Namespaced = namespaced
	return r
}

// WithState sets a literal state map.
func (r *RawModule) WithState(state map[string]any) *RawModule {
	r.State = state
	return r
}

// WithStateFunc sets a state producer, evaluated once per module built.
func (r *RawModule) WithStateFunc(fn func() map[string]any) *RawModule {
	r.StateFunc = fn
	return r
}

// AddGetter adds a getter reference.
func (r *RawModule) AddGetter(name string, handler any) *RawModule {
	if r.Getters == nil {
		r.Getters = make(map[string]any)
	}
	r.Getters[name] = handler
	return r
}

// AddMutation adds a mutation reference.
func (r *RawModule) AddMutation(name string, handler any) *RawModule {
	if r.Mutations == nil {
		r.Mutations = make(map[string]any)
	}
	r.Mutations[name] = handler
	return r
}

// AddAction adds an action reference.
func (r *RawModule) AddAction(name string, handler any) *RawModule {
	if r.Actions == nil {
		r.Actions = make(map[string]any)
	}
	r.Actions[name] = handler
	return r
}

// AddModule declares a nested module under key.
func (r *RawModule) AddModule(key string, child *RawModule) *RawModule {
	if r.Modules == nil {
		r.Modules = make(map[string]*RawModule)
	}
	r.Modules[key] = child
	return r
}
