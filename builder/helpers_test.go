package builder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/comalice/storetree"
)

func TestHelpersBuildTree(t *testing.T) {
	inc := func(s *storetree.State, _ any) {
		v, _ := s.Get("n")
		s.Set("n", v.(int)+1)
	}
	reset := func(_ context.Context, ac storetree.ActionContext, _ any) (any, error) {
		return nil, ac.Commit("reset", nil)
	}

	raw := Composite(map[string]*storetree.RawModule{
		"counter": NewNamespaced(
			StateFunc(func() map[string]any { return map[string]any{"n": 0} }),
			Mutation("inc", inc),
			RootAction("resetAll", reset),
			Child("history", New(Getter("len", func(s *storetree.State, _ storetree.GetterContext) any { return s.Len() }))),
		),
	}, State(map[string]any{"booted": true}))

	tree, err := storetree.New(raw, storetree.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatal(err)
	}

	counter, err := tree.Get(storetree.Path{"counter"})
	if err != nil {
		t.Fatal(err)
	}
	if !counter.Namespaced() {
		t.Error("counter should be namespaced")
	}
	mut, ok := counter.Definition().Mutation("inc")
	if !ok {
		t.Fatal("inc mutation missing")
	}
	mut(counter.State(), nil)
	if v, _ := counter.State().Get("n"); v != 1 {
		t.Errorf("n = %v, want 1", v)
	}

	a, ok := counter.Definition().Action("resetAll")
	if !ok || !a.Options.Root || a.Kind != storetree.ActionWithOptions {
		t.Errorf("resetAll = %+v, %v", a, ok)
	}

	ns, err := tree.GetNamespace(storetree.Path{"counter", "history"})
	if err != nil || ns != "counter/" {
		t.Errorf("history namespace = %q, %v", ns, err)
	}

	if v, _ := tree.Root().State().Get("booted"); v != true {
		t.Errorf("root state booted = %v", v)
	}
}

func TestStateFuncIsPerModule(t *testing.T) {
	def := New(StateFunc(func() map[string]any { return map[string]any{"n": 0} }))
	raw := New(Child("a", def), Child("b", def))

	tree, err := storetree.New(raw, storetree.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := tree.Get(storetree.Path{"a"})
	b, _ := tree.Get(storetree.Path{"b"})
	a.State().Set("n", 5)
	if v, _ := b.State().Get("n"); v != 0 {
		t.Errorf("b.n = %v, want 0", v)
	}
}
