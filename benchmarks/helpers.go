// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/comalice/storetree/internal/core"
	"github.com/comalice/storetree/internal/extensibility"
	"github.com/comalice/storetree/internal/primitives"
)

// GenFlatDefinition creates a root with n sibling modules m0..m{n-1}.
func GenFlatDefinition(n int) *primitives.RawModule {
	if n < 1 {
		n = 1
	}
	raw := primitives.NewRawModule()
	for i := 0; i < n; i++ {
		raw.AddModule(fmt.Sprintf("m%d", i), primitives.NewRawModule().WithNamespaced(true))
	}
	return raw
}

// GenDeepDefinition creates a chain of depth namespaced modules c0.c1...
// and returns it with the path of the deepest module.
func GenDeepDefinition(depth int) (*primitives.RawModule, primitives.Path) {
	if depth < 1 {
		depth = 1
	}
	mb := primitives.NewModuleBuilder()
	path := make(primitives.Path, 0, depth)
	for i := 0; i < depth; i++ {
		key := fmt.Sprintf("c%d", i)
		mb.Module(key).Namespaced(true)
		path = append(path, key)
	}
	return mb.Build(), path
}

// GenWideHandlers creates a module with n getters, mutations and actions.
func GenWideHandlers(n int) *primitives.RawModule {
	raw := primitives.NewRawModule()
	for i := 0; i < n; i++ {
		raw.AddGetter(fmt.Sprintf("g%d", i), func(*primitives.State, primitives.GetterContext) any { return i })
		raw.AddMutation(fmt.Sprintf("m%d", i), func(*primitives.State, any) {})
		if i%2 == 0 {
			raw.AddAction(fmt.Sprintf("a%d", i), primitives.ActionDef{Handler: noopAction, Root: true})
		} else {
			raw.AddAction(fmt.Sprintf("a%d", i), noopAction)
		}
	}
	return raw
}

func noopAction(context.Context, primitives.ActionContext, any) (any, error) { return nil, nil }

// QuietTree builds a tree that discards its logs and warnings.
func QuietTree(raw *primitives.RawModule, opts ...core.Option) *core.ModuleTree {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]core.Option{
		core.WithLogger(logger),
		core.WithReporter(core.ReporterFunc(func(core.Warning) {})),
	}, opts...)
	tree, err := core.New(raw, opts...)
	if err != nil {
		panic(err)
	}
	return tree
}

// GenManifestYAML generates a YAML manifest with n modules, each bound to
// the handlers of BenchRegistry.
func GenManifestYAML(n int) []byte {
	m := &extensibility.ModuleManifest{Modules: make(map[string]*extensibility.ModuleManifest, n)}
	for i := 0; i < n; i++ {
		m.Modules[fmt.Sprintf("m%d", i)] = &extensibility.ModuleManifest{
			Namespaced: i%2 == 0,
			State:      map[string]any{"n": i},
			Getters:    map[string]string{"value": "bench.value"},
			Mutations:  map[string]string{"set": "bench.set"},
			Actions: map[string]extensibility.ActionRef{
				"load":  {Handler: "bench.load"},
				"reset": {Handler: "bench.load", Root: true},
			},
		}
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		panic(err)
	}
	return data
}

// BenchRegistry registers the handlers referenced by GenManifestYAML.
func BenchRegistry() *extensibility.HandlerRegistry {
	r := extensibility.NewHandlerRegistry()
	r.RegisterGetter("bench.value", func(s *primitives.State, _ primitives.GetterContext) any {
		v, _ := s.Get("n")
		return v
	})
	r.RegisterMutation("bench.set", func(s *primitives.State, payload any) { s.Set("n", payload) })
	r.RegisterAction("bench.load", func(_ context.Context, ac primitives.ActionContext, payload any) (any, error) {
		return nil, ac.Commit("set", payload)
	})
	return r
}
