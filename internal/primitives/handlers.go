package primitives

import "context"

// GetterContext carries what a getter may read besides its own state.
type GetterContext struct {
	Getters     func(name string) any
	RootState   *State
	RootGetters func(name string) any
}

// GetterFunc derives a value from a module's state.
type GetterFunc func(state *State, gc GetterContext) any

// MutationFunc applies a synchronous transition to a module's state.
type MutationFunc func(state *State, payload any)

// ActionContext is handed to actions by the owning store.
type ActionContext struct {
	State     *State
	RootState *State
	Getters   func(name string) any
	Commit    func(mutation string, payload any) error
	Dispatch  func(ctx context.Context, action string, payload any) (any, error)
}

// ActionFunc performs an asynchronous operation, usually committing mutations.
type ActionFunc func(ctx context.Context, ac ActionContext, payload any) (any, error)

// ActionDef is the object form of an action: a handler plus options.
// Handler must be an ActionFunc or a func with the same signature.
type ActionDef struct {
	Handler any
	// Root registers the action in the root namespace.
	Root bool
}

// ActionKind tags which raw shape an Action was resolved from.
type ActionKind int

const (
	// ActionPlain came from a bare function.
	ActionPlain ActionKind = iota
	// ActionWithOptions came from an ActionDef.
	ActionWithOptions
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlain:
		return "plain"
	case ActionWithOptions:
		return "with-options"
	default:
		return "unknown"
	}
}

// ActionOptions holds the options of an ActionDef.
type ActionOptions struct {
	Root bool
}

// Action is a resolved action handler.
type Action struct {
	Kind    ActionKind
	Handler ActionFunc
	Options ActionOptions
}

// ResolveGetter reports whether v is a usable getter and returns it.
func ResolveGetter(v any) (GetterFunc, bool) {
	switch h := v.(type) {
	case GetterFunc:
		return h, h != nil
	case func(*State, GetterContext) any:
		return h, h != nil
	}
	return nil, false
}

// ResolveMutation reports whether v is a usable mutation and returns it.
func ResolveMutation(v any) (MutationFunc, bool) {
	switch h := v.(type) {
	case MutationFunc:
		return h, h != nil
	case func(*State, any):
		return h, h != nil
	}
	return nil, false
}

// ResolveAction reports whether v is a bare action function or an ActionDef
// (value or pointer) carrying one, and returns the tagged result.
func ResolveAction(v any) (Action, bool) {
	switch h := v.(type) {
	case ActionDef:
		return resolveActionDef(h)
	case *ActionDef:
		if h == nil {
			return Action{}, false
		}
		return resolveActionDef(*h)
	}
	fn, ok := resolveActionFunc(v)
	if !ok {
		return Action{}, false
	}
	return Action{Kind: ActionPlain, Handler: fn}, true
}

func resolveActionDef(def ActionDef) (Action, bool) {
	fn, ok := resolveActionFunc(def.Handler)
	if !ok {
		return Action{}, false
	}
	return Action{
		Kind:    ActionWithOptions,
		Handler: fn,
		Options: ActionOptions{Root: def.Root},
	}, true
}

func resolveActionFunc(v any) (ActionFunc, bool) {
	switch h := v.(type) {
	case ActionFunc:
		return h, h != nil
	case func(context.Context, ActionContext, any) (any, error):
		return h, h != nil
	}
	return nil, false
}
