package testutil

import (
	"reflect"
	"testing"

	"github.com/comalice/storetree/internal/core"
	"github.com/comalice/storetree/internal/primitives"
)

func TestShopDefinitionBuildsTree(t *testing.T) {
	tree, rec := NewTree(t, ShopDefinition())
	if got := tree.Root().ChildKeys(); !reflect.DeepEqual(got, []string{"cart", "counter", "user"}) {
		t.Fatalf("root children = %v", got)
	}
	ns, err := tree.GetNamespace(primitives.Path{"cart", "items"})
	if err != nil || ns != "cart/items/" {
		t.Errorf("namespace = %q, %v", ns, err)
	}

	if err := tree.Unregister(primitives.Path{"nope"}); err != nil {
		t.Fatal(err)
	}
	if kinds := rec.Kinds(); !reflect.DeepEqual(kinds, []core.WarningKind{core.WarnUnregisterMissing}) {
		t.Errorf("kinds = %v", kinds)
	}
}

func TestWideDefinition(t *testing.T) {
	tree, _ := NewTree(t, WideDefinition(2, 3))
	count := 0
	if err := tree.Walk(func(primitives.Path, *core.Module) error {
		count++
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if count != 1+3+9 {
		t.Errorf("module count = %d, want 13", count)
	}
}
