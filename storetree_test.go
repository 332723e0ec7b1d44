package storetree_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/comalice/storetree"
)

func quiet() storetree.Option {
	return storetree.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFacadeLifecycle(t *testing.T) {
	var warnings []storetree.Warning
	tree, err := storetree.New(
		storetree.NewModuleBuilder().
			Module("account").Namespaced(true).
			Module("profile").Namespaced(true).
			Build(),
		quiet(),
		storetree.WithReporter(storetree.ReporterFunc(func(w storetree.Warning) {
			warnings = append(warnings, w)
		})),
	)
	if err != nil {
		t.Fatal(err)
	}

	ns, err := tree.GetNamespace(storetree.ParsePath("account/profile"))
	if err != nil || ns != "account/profile/" {
		t.Fatalf("namespace = %q, %v", ns, err)
	}

	plugin := storetree.NewRawModule().WithNamespaced(true)
	if err := tree.Register(storetree.ParsePath("account.plugin"), plugin); err != nil {
		t.Fatal(err)
	}
	if !tree.IsRegistered(storetree.Path{"account", "plugin"}) {
		t.Fatal("plugin not registered")
	}
	if err := tree.Unregister(storetree.Path{"account", "plugin"}); err != nil {
		t.Fatal(err)
	}
	if tree.IsRegistered(storetree.Path{"account", "plugin"}) {
		t.Fatal("plugin still registered")
	}

	if err := tree.Unregister(storetree.Path{"account", "plugin"}); err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Kind != storetree.WarnUnregisterMissing {
		t.Errorf("warnings = %+v", warnings)
	}

	if _, err := tree.Get(storetree.Path{"nope"}); !errors.Is(err, storetree.ErrModuleNotFound) {
		t.Errorf("Get(nope) = %v", err)
	}
	if err := tree.Unregister(storetree.Path{}); !errors.Is(err, storetree.ErrRootPath) {
		t.Errorf("Unregister(root) = %v", err)
	}
}

func TestFacadeInvalidDefinition(t *testing.T) {
	raw := storetree.NewRawModule()
	raw.Getters = map[string]any{"broken": 42}

	_, err := storetree.New(raw, quiet())
	var ae *storetree.AssertionError
	if !errors.As(err, &ae) || !errors.Is(err, storetree.ErrInvalidDefinition) {
		t.Fatalf("got %v, want AssertionError", err)
	}
	if ae.Key != "broken" {
		t.Errorf("key = %q", ae.Key)
	}
}

func Example() {
	tree, err := storetree.New(storetree.NewModuleBuilder().
		Module("cart").Namespaced(true).
		Module("items").Namespaced(true).
		Up().
		Module("coupons").
		Build())
	if err != nil {
		panic(err)
	}

	for _, p := range []string{"cart", "cart/items", "cart/coupons"} {
		ns, _ := tree.GetNamespace(storetree.ParsePath(p))
		fmt.Printf("%s => %q\n", p, ns)
	}
	// Output:
	// cart => "cart/"
	// cart/items => "cart/items/"
	// cart/coupons => "cart/"
}
