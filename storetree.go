// Package storetree maintains a tree of store modules: definitions of state,
// getters, mutations and actions nested under string keys. The tree supports
// registering and unregistering modules at runtime, namespace computation
// and hot updates of handlers.
package storetree

import (
	"github.com/comalice/storetree/internal/core"
	"github.com/comalice/storetree/internal/primitives"
)

type (
	Path          = primitives.Path
	State         = primitives.State
	RawModule     = primitives.RawModule
	ModuleBuilder = primitives.ModuleBuilder
	Definition    = primitives.Definition

	GetterFunc    = primitives.GetterFunc
	GetterContext = primitives.GetterContext
	MutationFunc  = primitives.MutationFunc
	ActionFunc    = primitives.ActionFunc
	ActionContext = primitives.ActionContext
	ActionDef     = primitives.ActionDef
	Action        = primitives.Action
	ActionKind    = primitives.ActionKind

	AssertionError = primitives.AssertionError

	Module         = core.Module
	ModuleTree     = core.ModuleTree
	Option         = core.Option
	RegisterOption = core.RegisterOption
	Warning        = core.Warning
	WarningKind    = core.WarningKind
	Reporter       = core.Reporter
	ReporterFunc   = core.ReporterFunc
	WalkFunc       = core.WalkFunc
)

const (
	ActionPlain       = primitives.ActionPlain
	ActionWithOptions = primitives.ActionWithOptions

	WarnUnregisterMissing  = core.WarnUnregisterMissing
	WarnHotUpdateNewModule = core.WarnHotUpdateNewModule
)

var (
	ErrInvalidDefinition = primitives.ErrInvalidDefinition
	ErrModuleNotFound    = core.ErrModuleNotFound
	ErrRootPath          = core.ErrRootPath
	ErrNilDefinition     = core.ErrNilDefinition
	ErrSkipChildren      = core.ErrSkipChildren
)

var (
	WithStrict   = core.WithStrict
	WithLogger   = core.WithLogger
	WithReporter = core.WithReporter
	WithRuntime  = core.WithRuntime
)

// New builds a module tree from the root definition.
func New(raw *RawModule, opts ...Option) (*ModuleTree, error) {
	return core.New(raw, opts...)
}

// NewRawModule returns an empty definition.
func NewRawModule() *RawModule { return primitives.NewRawModule() }

// NewModuleBuilder starts a fluent definition at the root module.
func NewModuleBuilder() *ModuleBuilder { return primitives.NewModuleBuilder() }

// ParsePath splits "a/b/c" or "a.b.c" into a Path. The empty string is the
// root path.
func ParsePath(s string) Path { return primitives.ParsePath(s) }
