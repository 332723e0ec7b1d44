package production

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/comalice/storetree/internal/extensibility"
)

// hclModule is the HCL shape of a manifest:
//
//	namespaced = true
//	state      = { count = 0 }
//	getters    = { doubled = "counter.doubled" }
//	mutations  = { inc = "counter.increment" }
//
//	action "reset" {
//	  handler = "counter.reset"
//	  root    = true
//	}
//
//	module "child" { ... }
type hclModule struct {
	Name       string            `hcl:"name,label"`
	Namespaced bool              `hcl:"namespaced,optional"`
	State      hcl.Expression    `hcl:"state,optional"`
	Getters    map[string]string `hcl:"getters,optional"`
	Mutations  map[string]string `hcl:"mutations,optional"`
	Actions    []*hclAction      `hcl:"action,block"`
	Modules    []*hclModule      `hcl:"module,block"`
}

type hclAction struct {
	Name    string `hcl:"name,label"`
	Handler string `hcl:"handler"`
	Root    bool   `hcl:"root,optional"`
}

// DecodeHCLManifest decodes an HCL manifest. filename is used in diagnostics
// and must end in .hcl.
func DecodeHCLManifest(filename string, src []byte) (*extensibility.ModuleManifest, error) {
	var root hclModule
	if err := hclsimple.Decode(filename, src, nil, &root); err != nil {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, err)
	}
	return root.toManifest("")
}

func (h *hclModule) toManifest(path string) (*extensibility.ModuleManifest, error) {
	m := &extensibility.ModuleManifest{
		Namespaced: h.Namespaced,
		Getters:    h.Getters,
		Mutations:  h.Mutations,
	}

	state, err := decodeState(h.State)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", path, err)
	}
	m.State = state

	for _, a := range h.Actions {
		if m.Actions == nil {
			m.Actions = make(map[string]extensibility.ActionRef)
		}
		if _, dup := m.Actions[a.Name]; dup {
			return nil, fmt.Errorf("module %q: duplicate action %q", path, a.Name)
		}
		m.Actions[a.Name] = extensibility.ActionRef{Handler: a.Handler, Root: a.Root}
	}

	for _, child := range h.Modules {
		if m.Modules == nil {
			m.Modules = make(map[string]*extensibility.ModuleManifest)
		}
		if _, dup := m.Modules[child.Name]; dup {
			return nil, fmt.Errorf("module %q: duplicate module %q", path, child.Name)
		}
		childPath := child.Name
		if path != "" {
			childPath = path + "." + child.Name
		}
		cm, err := child.toManifest(childPath)
		if err != nil {
			return nil, err
		}
		m.Modules[child.Name] = cm
	}
	return m, nil
}

// decodeState evaluates the state expression without variables and converts
// the resulting object into plain Go values via its JSON form.
func decodeState(expr hcl.Expression) (map[string]any, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("state: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("state must be an object, got %s", ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("state must be fully known")
	}

	data, err := ctyjson.Marshal(val, ty)
	if err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	return out, nil
}
