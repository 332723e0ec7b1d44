package extensibility

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ModuleManifest declares a module tree with handlers referenced by the
// names they were registered under in a HandlerRegistry. Getters, Mutations
// and Actions map local names to registered names.
type ModuleManifest struct {
	Namespaced bool                       `json:"namespaced,omitempty" yaml:"namespaced,omitempty"`
	State      map[string]any             `json:"state,omitempty" yaml:"state,omitempty"`
	Getters    map[string]string          `json:"getters,omitempty" yaml:"getters,omitempty"`
	Mutations  map[string]string          `json:"mutations,omitempty" yaml:"mutations,omitempty"`
	Actions    map[string]ActionRef       `json:"actions,omitempty" yaml:"actions,omitempty"`
	Modules    map[string]*ModuleManifest `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// ActionRef names an action handler. In YAML and JSON it is either a bare
// handler name or an object {handler, root}.
type ActionRef struct {
	Handler string `json:"handler" yaml:"handler"`
	Root    bool   `json:"root,omitempty" yaml:"root,omitempty"`
}

type actionRefObject ActionRef

func (a *ActionRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*a = ActionRef{Handler: value.Value}
		return nil
	}
	var obj actionRefObject
	if err := value.Decode(&obj); err != nil {
		return fmt.Errorf("action reference: %w", err)
	}
	*a = ActionRef(obj)
	return nil
}

func (a ActionRef) MarshalYAML() (any, error) {
	if !a.Root {
		return a.Handler, nil
	}
	return actionRefObject(a), nil
}

func (a *ActionRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*a = ActionRef{Handler: name}
		return nil
	}
	var obj actionRefObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("action reference: %w", err)
	}
	*a = ActionRef(obj)
	return nil
}

func (a ActionRef) MarshalJSON() ([]byte, error) {
	if !a.Root {
		return json.Marshal(a.Handler)
	}
	return json.Marshal(actionRefObject(a))
}
