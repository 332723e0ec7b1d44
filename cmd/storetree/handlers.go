package main

import (
	"context"
	"fmt"

	"github.com/comalice/storetree/internal/extensibility"
	"github.com/comalice/storetree/internal/primitives"
)

// builtinRegistry holds the handlers manifests can refer to.
func builtinRegistry() *extensibility.HandlerRegistry {
	r := extensibility.NewHandlerRegistry()

	r.RegisterGetter("counter.value", func(s *primitives.State, _ primitives.GetterContext) any {
		v, _ := s.Get("count")
		return v
	})
	r.RegisterMutation("counter.increment", func(s *primitives.State, _ any) {
		s.Set("count", toInt(s, "count")+1)
	})
	r.RegisterMutation("counter.set", func(s *primitives.State, payload any) {
		s.Set("count", payload)
	})
	r.RegisterAction("counter.incrementLater", func(_ context.Context, ac primitives.ActionContext, _ any) (any, error) {
		return nil, ac.Commit("increment", nil)
	})
	r.RegisterAction("counter.reset", func(_ context.Context, ac primitives.ActionContext, _ any) (any, error) {
		return nil, ac.Commit("set", 0)
	})

	r.RegisterGetter("list.size", func(s *primitives.State, _ primitives.GetterContext) any {
		v, _ := s.Get("items")
		items, _ := v.([]any)
		return len(items)
	})
	r.RegisterMutation("list.append", func(s *primitives.State, payload any) {
		v, _ := s.Get("items")
		items, _ := v.([]any)
		s.Set("items", append(items, payload))
	})
	r.RegisterMutation("list.clear", func(s *primitives.State, _ any) {
		s.Set("items", []any{})
	})
	r.RegisterAction("list.add", func(_ context.Context, ac primitives.ActionContext, payload any) (any, error) {
		if payload == nil {
			return nil, fmt.Errorf("list.add: nil item")
		}
		return nil, ac.Commit("append", payload)
	})

	return r
}

// toInt reads a numeric state value. Manifests decode numbers as int or
// float64 depending on the format.
func toInt(s *primitives.State, key string) int {
	v, _ := s.Get(key)
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}
