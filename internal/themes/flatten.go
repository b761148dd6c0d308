// SPDX-License-Identifier: MIT
package themes

// Var is a single CSS custom property produced from a theme terminal
type Var struct {
	Name  string // e.g. "--pte-colors-primary"
	Value string // e.g. "#2ecc71"
}

// Declaration renders the variable as "name: value;"
func (v Var) Declaration() string {
	return v.Name + ": " + v.Value + ";"
}

// Flatten turns a nested theme into prefixed CSS variables, depth first in key order.
// An empty prefix falls back to DefaultPrefix.
func Flatten(t *Theme, prefix string) []Var {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	var vars []Var
	flatten(t, prefix, &vars)
	return vars
}

func flatten(t *Theme, prefix string, out *[]Var) {
	t.Each(func(key string, v Value) {
		if v.IsNested() {
			flatten(v.nested, prefix+"-"+key, out)
			return
		}
		*out = append(*out, Var{Name: "--" + prefix + "-" + key, Value: v.String()})
	})
}

// VarMap returns the flattened theme keyed by variable name
func VarMap(t *Theme, prefix string) map[string]string {
	vars := Flatten(t, prefix)
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Name] = v.Value
	}
	return m
}
