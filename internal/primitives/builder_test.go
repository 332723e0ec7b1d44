package primitives

import "testing"

func TestModuleBuilder(t *testing.T) {
	raw := NewModuleBuilder().
		State(map[string]any{"ready": true}).
		Getter("isReady", noopGetter).
		Module("cart").
		Namespaced(true).
		Mutation("add", noopMutation).
		Module("items").
		StateFunc(func() map[string]any { return map[string]any{"list": []string{}} }).
		Up().
		RootAction("checkout", noopAction).
		Up().
		Module("user").
		Action("login", noopAction).
		Up().
		Up().
		Build()

	if raw.State["ready"] != true || len(raw.Getters) != 1 {
		t.Fatalf("root not populated: %+v", raw)
	}
	cart := raw.Modules["cart"]
	if cart == nil || !cart.Namespaced || len(cart.Mutations) != 1 {
		t.Fatalf("cart not populated: %+v", cart)
	}
	if _, ok := ResolveAction(cart.Actions["checkout"]); !ok {
		t.Errorf("RootAction should be attached to cart after Up from items")
	}
	if items := cart.Modules["items"]; items == nil || items.StateFunc == nil {
		t.Errorf("items not populated: %+v", items)
	}
	if user := raw.Modules["user"]; user == nil || len(user.Actions) != 1 {
		t.Errorf("user should be a sibling of cart: %+v", raw.Modules)
	}
	if err := AssertRawModule(nil, cart); err != nil {
		t.Errorf("builder output should validate: %v", err)
	}
}
