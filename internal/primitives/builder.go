package primitives

// ModuleBuilder builds a RawModule tree fluently. Module pushes a nested
// module onto the stack and Up pops back to its parent.
type ModuleBuilder struct {
	root  *RawModule
	stack []*RawModule
}

// NewModuleBuilder creates a builder positioned at a fresh root module.
func NewModuleBuilder() *ModuleBuilder {
	root := NewRawModule()
	return &ModuleBuilder{root: root, stack: []*RawModule{root}}
}

func (b *ModuleBuilder) current() *RawModule {
	return b.stack[len(b.stack)-1]
}

// Namespaced sets the namespaced flag of the current module.
func (b *ModuleBuilder) Namespaced(namespaced bool) *ModuleBuilder {
	b.current().WithNamespaced(namespaced)
	return b
}

// State sets a literal state map on the current module.
func (b *ModuleBuilder) State(state map[string]any) *ModuleBuilder {
	b.current().WithState(state)
	return b
}

// StateFunc sets a state producer on the current module.
func (b *ModuleBuilder) StateFunc(fn func() map[string]any) *ModuleBuilder {
	b.current().WithStateFunc(fn)
	return b
}

// Getter adds a getter to the current module.
func (b *ModuleBuilder) Getter(name string, fn GetterFunc) *ModuleBuilder {
	b.current().AddGetter(name, fn)
	return b
}

// Mutation adds a mutation to the current module.
func (b *ModuleBuilder) Mutation(name string, fn MutationFunc) *ModuleBuilder {
	b.current().AddMutation(name, fn)
	return b
}

// Action adds a plain action to the current module.
func (b *ModuleBuilder) Action(name string, fn ActionFunc) *ModuleBuilder {
	b.current().AddAction(name, fn)
	return b
}

// RootAction adds an action registered in the root namespace.
func (b *ModuleBuilder) RootAction(name string, fn ActionFunc) *ModuleBuilder {
	b.current().AddAction(name, ActionDef{Handler: fn, Root: true})
	return b
}

// Module declares a nested module under key and makes it current.
func (b *ModuleBuilder) Module(key string) *ModuleBuilder {
	child := NewRawModule()
	b.current().AddModule(key, child)
	b.stack = append(b.stack, child)
	return b
}

// Up returns to the parent of the current module. No-op at the root.
func (b *ModuleBuilder) Up() *ModuleBuilder {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
	return b
}

// Build returns the root RawModule.
func (b *ModuleBuilder) Build() *RawModule {
	return b.root
}
