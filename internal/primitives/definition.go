package primitives

// Definition is the resolved, immutable functional surface of a module.
// Handler maps are built once and never written afterwards, so snapshots may
// share them freely.
type Definition struct {
	namespaced bool
	getters    map[string]GetterFunc
	mutations  map[string]MutationFunc
	actions    map[string]Action
}

// NewDefinition resolves raw into a Definition. Entries whose shape cannot be
// resolved are left out; AssertRawModule is how callers learn about them.
func NewDefinition(raw *RawModule) Definition {
	return Definition{
		namespaced: raw.Namespaced,
		getters:    resolveGetters(raw.Getters),
		mutations:  resolveMutations(raw.Mutations),
		actions:    resolveActions(raw.Actions),
	}
}

// Merge returns a new Definition taking Namespaced from raw unconditionally
// and each handler map from raw only when raw declares it (non-nil).
func (d Definition) Merge(raw *RawModule) Definition {
	next := d
	next.namespaced = raw.Namespaced
	if raw.Actions != nil {
		next.actions = resolveActions(raw.Actions)
	}
	if raw.Mutations != nil {
		next.mutations = resolveMutations(raw.Mutations)
	}
	if raw.Getters != nil {
		next.getters = resolveGetters(raw.Getters)
	}
	return next
}

// Namespaced reports whether the module qualifies its names with its key.
func (d Definition) Namespaced() bool { return d.namespaced }

// Getter looks up a getter by local name.
func (d Definition) Getter(name string) (GetterFunc, bool) {
	fn, ok := d.getters[name]
	return fn, ok
}

// Mutation looks up a mutation by local name.
func (d Definition) Mutation(name string) (MutationFunc, bool) {
	fn, ok := d.mutations[name]
	return fn, ok
}

// Action looks up an action by local name.
func (d Definition) Action(name string) (Action, bool) {
	a, ok := d.actions[name]
	return a, ok
}

// GetterNames returns the getter names in sorted order.
func (d Definition) GetterNames() []string { return SortedKeys(d.getters) }

// MutationNames returns the mutation names in sorted order.
func (d Definition) MutationNames() []string { return SortedKeys(d.mutations) }

// ActionNames returns the action names in sorted order.
func (d Definition) ActionNames() []string { return SortedKeys(d.actions) }

// ForEachGetter calls fn for every getter in sorted name order.
func (d Definition) ForEachGetter(fn func(GetterFunc, string)) {
	for _, name := range d.GetterNames() {
		fn(d.getters[name], name)
	}
}

// ForEachMutation calls fn for every mutation in sorted name order.
func (d Definition) ForEachMutation(fn func(MutationFunc, string)) {
	for _, name := range d.MutationNames() {
		fn(d.mutations[name], name)
	}
}

// ForEachAction calls fn for every action in sorted name order.
func (d Definition) ForEachAction(fn func(Action, string)) {
	for _, name := range d.ActionNames() {
		fn(d.actions[name], name)
	}
}

func resolveGetters(raw map[string]any) map[string]GetterFunc {
	if raw == nil {
		return nil
	}
	out := make(map[string]GetterFunc, len(raw))
	for name, v := range raw {
		if fn, ok := ResolveGetter(v); ok {
			out[name] = fn
		}
	}
	return out
}

func resolveMutations(raw map[string]any) map[string]MutationFunc {
	if raw == nil {
		return nil
	}
	out := make(map[string]MutationFunc, len(raw))
	for name, v := range raw {
		if fn, ok := ResolveMutation(v); ok {
			out[name] = fn
		}
	}
	return out
}

func resolveActions(raw map[string]any) map[string]Action {
	if raw == nil {
		return nil
	}
	out := make(map[string]Action, len(raw))
	for name, v := range raw {
		if a, ok := ResolveAction(v); ok {
			out[name] = a
		}
	}
	return out
}
