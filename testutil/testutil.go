// Package testutil provides fixtures shared by the module tree tests:
// a recording warning reporter, a quiet logger and sample definitions.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/comalice/storetree/internal/core"
	"github.com/comalice/storetree/internal/primitives"
)

// RecordingReporter stores every warning it receives.
type RecordingReporter struct {
	mu       sync.Mutex
	warnings []core.Warning
}

func (r *RecordingReporter) Report(w core.Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

// Warnings returns a copy of the recorded warnings.
func (r *RecordingReporter) Warnings() []core.Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Warning(nil), r.warnings...)
}

// Kinds returns the kinds of the recorded warnings in order.
func (r *RecordingReporter) Kinds() []core.WarningKind {
	var kinds []core.WarningKind
	for _, w := range r.Warnings() {
		kinds = append(kinds, w.Kind)
	}
	return kinds
}

// QuietLogger discards everything.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTree builds a tree with a quiet logger and a recording reporter.
// Extra options are applied after those defaults.
func NewTree(tb testing.TB, raw *primitives.RawModule, opts ...core.Option) (*core.ModuleTree, *RecordingReporter) {
	tb.Helper()
	rec := &RecordingReporter{}
	opts = append([]core.Option{core.WithLogger(QuietLogger()), core.WithReporter(rec)}, opts...)
	tree, err := core.New(raw, opts...)
	if err != nil {
		tb.Fatalf("core.New failed: %v", err)
	}
	return tree, rec
}

// CounterModule is a namespaced counter with one getter, two mutations and
// a plain and a root action.
func CounterModule() *primitives.RawModule {
	return primitives.NewModuleBuilder().
		Namespaced(true).
		StateFunc(func() map[string]any { return map[string]any{"count": 0} }).
		Getter("doubled", func(s *primitives.State, _ primitives.GetterContext) any {
			v, _ := s.Get("count")
			return v.(int) * 2
		}).
		Mutation("increment", func(s *primitives.State, _ any) {
			v, _ := s.Get("count")
			s.Set("count", v.(int)+1)
		}).
		Mutation("set", func(s *primitives.State, payload any) {
			s.Set("count", payload)
		}).
		Action("incrementAsync", func(_ context.Context, ac primitives.ActionContext, _ any) (any, error) {
			return nil, ac.Commit("increment", nil)
		}).
		RootAction("reset", func(_ context.Context, ac primitives.ActionContext, _ any) (any, error) {
			return nil, ac.Commit("set", 0)
		}).
		Build()
}

// ShopDefinition is a small static tree:
//
//	root
//	├── cart (namespaced)
//	│   └── items (namespaced)
//	├── counter (namespaced, CounterModule)
//	└── user
func ShopDefinition() *primitives.RawModule {
	return primitives.NewModuleBuilder().
		State(map[string]any{"ready": false}).
		Module("cart").
		Namespaced(true).
		StateFunc(func() map[string]any { return map[string]any{"total": 0} }).
		Mutation("clear", func(s *primitives.State, _ any) { s.Set("total", 0) }).
		Module("items").
		Namespaced(true).
		Getter("count", func(s *primitives.State, _ primitives.GetterContext) any { return s.Len() }).
		Up().
		Up().
		Module("user").
		Getter("name", func(s *primitives.State, _ primitives.GetterContext) any {
			v, _ := s.Get("name")
			return v
		}).
		Up().
		Build().
		AddModule("counter", CounterModule())
}

// WideDefinition builds a tree of the given depth where every module has
// fanout children named m0..m{fanout-1}; odd keys are namespaced.
func WideDefinition(depth, fanout int) *primitives.RawModule {
	raw := primitives.NewRawModule().
		AddGetter("g", func(*primitives.State, primitives.GetterContext) any { return nil }).
		AddMutation("m", func(*primitives.State, any) {})
	if depth == 0 {
		return raw
	}
	for i := 0; i < fanout; i++ {
		child := WideDefinition(depth-1, fanout)
		child.Namespaced = i%2 == 1
		raw.AddModule(fmt.Sprintf("m%d", i), child)
	}
	return raw
}
