package primitives

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidDefinition is wrapped by every AssertionError.
var ErrInvalidDefinition = errors.New("invalid module definition")

const (
	expectFunction      = "function"
	expectActionHandler = `function or object with "handler" function`
)

// AssertionError reports a handler reference of the wrong shape.
type AssertionError struct {
	Path     Path
	Field    string // getters, mutations or actions
	Key      string
	Value    any
	Expected string
}

func (e *AssertionError) Error() string {
	msg := fmt.Sprintf("%s should be %s but %q", e.Field, e.Expected, e.Field+"."+e.Key)
	if !e.Path.IsRoot() {
		msg += fmt.Sprintf(" in module %q", e.Path.String())
	}
	return msg + fmt.Sprintf(" is %s.", formatValue(e.Value))
}

func (e *AssertionError) Unwrap() error {
	return ErrInvalidDefinition
}

type fieldAssert struct {
	field    string
	entries  func(*RawModule) map[string]any
	valid    func(any) bool
	expected string
}

var fieldAsserts = []fieldAssert{
	{
		field:   "getters",
		entries: func(r *RawModule) map[string]any { return r.Getters },
		valid: func(v any) bool {
			_, ok := ResolveGetter(v)
			return ok
		},
		expected: expectFunction,
	},
	{
		field:   "mutations",
		entries: func(r *RawModule) map[string]any { return r.Mutations },
		valid: func(v any) bool {
			_, ok := ResolveMutation(v)
			return ok
		},
		expected: expectFunction,
	},
	{
		field:   "actions",
		entries: func(r *RawModule) map[string]any { return r.Actions },
		valid: func(v any) bool {
			_, ok := ResolveAction(v)
			return ok
		},
		expected: expectActionHandler,
	},
}

// AssertRawModule checks the getters, mutations and actions of raw (not its
// nested modules) and returns the first offending entry as *AssertionError.
// Entries are checked field by field in sorted key order.
func AssertRawModule(path Path, raw *RawModule) error {
	for _, fa := range fieldAsserts {
		entries := fa.entries(raw)
		for _, key := range SortedKeys(entries) {
			if v := entries[key]; !fa.valid(v) {
				return &AssertionError{
					Path:     path,
					Field:    fa.field,
					Key:      key,
					Value:    v,
					Expected: fa.expected,
				}
			}
		}
	}
	return nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Funcs and channels have no stable rendering; name the type.
		return fmt.Sprintf("%T", v)
	}
	return string(data)
}
