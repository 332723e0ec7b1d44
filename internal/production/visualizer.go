package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/storetree/internal/core"
	"github.com/comalice/storetree/internal/primitives"
)

// ModuleDescription is a serializable view of one live module.
type ModuleDescription struct {
	Key        string               `json:"key" yaml:"key"`
	Path       string               `json:"path" yaml:"path"`
	Namespace  string               `json:"namespace" yaml:"namespace"`
	ID         string               `json:"id" yaml:"id"`
	Version    string               `json:"version" yaml:"version"`
	Namespaced bool                 `json:"namespaced" yaml:"namespaced"`
	Runtime    bool                 `json:"runtime" yaml:"runtime"`
	StateKeys  []string             `json:"stateKeys,omitempty" yaml:"stateKeys,omitempty"`
	Getters    []string             `json:"getters,omitempty" yaml:"getters,omitempty"`
	Mutations  []string             `json:"mutations,omitempty" yaml:"mutations,omitempty"`
	Actions    []string             `json:"actions,omitempty" yaml:"actions,omitempty"`
	Children   []*ModuleDescription `json:"children,omitempty" yaml:"children,omitempty"`
}

// Describe walks the tree and returns the description of its root. Handler
// names are listed fully qualified with the module's namespace; root
// actions are listed unqualified.
func Describe(tree *core.ModuleTree) (*ModuleDescription, error) {
	// Walk is pre-order, so stack[i] is the ancestor at depth i. Keys may
	// contain '.', which makes joined paths ambiguous as lookup keys.
	var stack []*ModuleDescription

	err := tree.Walk(func(path primitives.Path, m *core.Module) error {
		ns, err := tree.GetNamespace(path)
		if err != nil {
			return err
		}
		d := &ModuleDescription{
			Key:        path.Key(),
			Path:       path.String(),
			Namespace:  ns,
			ID:         m.ID(),
			Version:    m.Version(),
			Namespaced: m.Namespaced(),
			Runtime:    m.Runtime(),
			StateKeys:  primitives.SortedKeys(m.State().Snapshot()),
		}
		m.ForEachGetter(func(_ primitives.GetterFunc, name string) {
			d.Getters = append(d.Getters, ns+name)
		})
		m.ForEachMutation(func(_ primitives.MutationFunc, name string) {
			d.Mutations = append(d.Mutations, ns+name)
		})
		m.ForEachAction(func(a primitives.Action, name string) {
			if a.Options.Root {
				d.Actions = append(d.Actions, name)
				return
			}
			d.Actions = append(d.Actions, ns+name)
		})

		stack = stack[:len(path)]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, d)
		}
		stack = append(stack, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stack[0], nil
}

// DefaultVisualizer renders a module tree as DOT, JSON or YAML.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the tree. Runtime modules are
// dashed, namespaced modules filled.
func (v *DefaultVisualizer) ExportDOT(tree *core.ModuleTree) (string, error) {
	root, err := Describe(tree)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(`digraph ModuleTree {
  rankdir=TB;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	renderModule(&buf, root)
	buf.WriteString("}\n")
	return buf.String(), nil
}

// ExportJSON serializes the tree description to JSON.
func (v *DefaultVisualizer) ExportJSON(tree *core.ModuleTree) ([]byte, error) {
	root, err := Describe(tree)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(root, "", "  ")
}

// ExportYAML serializes the tree description to YAML.
func (v *DefaultVisualizer) ExportYAML(tree *core.ModuleTree) ([]byte, error) {
	root, err := Describe(tree)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(root)
}

func renderModule(buf *bytes.Buffer, d *ModuleDescription) {
	label := d.Key
	if d.Path == "" {
		label = "(root)"
	}
	if d.Namespace != "" {
		label += `\n` + d.Namespace
	}
	label += fmt.Sprintf(`\ng:%d m:%d a:%d`, len(d.Getters), len(d.Mutations), len(d.Actions))

	style := "rounded"
	if d.Runtime {
		style += ",dashed"
	}
	if d.Namespaced {
		style += ",filled"
	}
	buf.WriteString(fmt.Sprintf(`  "%s" [label="%s" style="%s"];`+"\n", d.ID, label, style))

	for _, child := range d.Children {
		renderModule(buf, child)
		buf.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s"];`+"\n", d.ID, child.ID, child.Key))
	}
}
