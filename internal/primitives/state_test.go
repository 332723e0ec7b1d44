package primitives

import (
	"fmt"
	"sync"
	"testing"
)

func TestStateBasic(t *testing.T) {
	s := NewState(nil)
	if _, ok := s.Get("missing"); ok {
		t.Error("Get missing should return false")
	}
	s.Set("key", 42)
	v, ok := s.Get("key")
	if !ok {
		t.Error("Get after Set should return true")
	}
	if vi, okk := v.(int); !okk || vi != 42 {
		t.Errorf("Get value mismatch: got %v (%T)", v, v)
	}
	s.Delete("key")
	if _, ok := s.Get("key"); ok {
		t.Error("Get after Delete should return false")
	}
}

func TestStateWrapsLiteral(t *testing.T) {
	data := map[string]any{"count": 1}
	s := NewState(data)
	s.Set("count", 2)
	if data["count"] != 2 {
		t.Errorf("NewState should wrap the literal map, got %v", data["count"])
	}
}

func TestStateSnapshotRestore(t *testing.T) {
	s := NewState(map[string]any{"a": 1})
	snap := s.Snapshot()
	snap["a"] = 99
	if v, _ := s.Get("a"); v != 1 {
		t.Errorf("Snapshot must be a copy, state now %v", v)
	}

	s.Restore(map[string]any{"b": 2})
	if _, ok := s.Get("a"); ok {
		t.Error("Restore should drop old keys")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	s := NewState(nil)
	const workers = 20
	const ops = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < ops; j++ {
				key := fmt.Sprintf("w%d_%d", id, j)
				s.Set(key, j)
				s.Get(key)
			}
		}(i)
	}
	wg.Wait()
	if got := s.Len(); got != workers*ops {
		t.Errorf("Len() = %d, want %d", got, workers*ops)
	}
}

func TestRawModuleNewState(t *testing.T) {
	calls := 0
	raw := NewRawModule().
		WithState(map[string]any{"from": "literal"}).
		WithStateFunc(func() map[string]any {
			calls++
			return map[string]any{"from": "func"}
		})

	s := raw.NewState()
	if v, _ := s.Get("from"); v != "func" {
		t.Errorf("StateFunc should win, got %v", v)
	}
	if calls != 1 {
		t.Errorf("producer called %d times, want 1", calls)
	}

	if got := NewRawModule().NewState().Len(); got != 0 {
		t.Errorf("default state should be empty, has %d keys", got)
	}
}
