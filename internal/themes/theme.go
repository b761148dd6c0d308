// SPDX-License-Identifier: MIT
package themes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Kind tells a terminal value apart from a nested theme
type Kind int

const (
	KindTerminal Kind = iota
	KindNested
)

// Value is either a terminal (string, number, boolean or null) or a nested Theme
type Value struct {
	kind   Kind
	scalar any
	nested *Theme
}

// Theme is an ordered mapping of keys to values. Traversal follows insertion order.
type Theme struct {
	entries *orderedmap.OrderedMap[string, Value]
}

// New returns an empty theme
func New() *Theme {
	return &Theme{entries: orderedmap.New[string, Value]()}
}

// Terminal wraps a scalar. Unsupported types are stored by their fmt representation.
func Terminal(v any) Value {
	switch s := v.(type) {
	case nil, string, bool, float64, int64:
		return Value{kind: KindTerminal, scalar: s}
	case int:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case int8:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case int16:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case int32:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case uint:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case uint8:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case uint16:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case uint32:
		return Value{kind: KindTerminal, scalar: int64(s)}
	case uint64:
		return Value{kind: KindTerminal, scalar: strconv.FormatUint(s, 10)}
	case float32:
		return Value{kind: KindTerminal, scalar: float64(s)}
	case fmt.Stringer:
		return Value{kind: KindTerminal, scalar: s.String()}
	default:
		return Value{kind: KindTerminal, scalar: fmt.Sprint(s)}
	}
}

// Nested wraps a theme as a value. A nil theme becomes a null terminal.
func Nested(t *Theme) Value {
	if t == nil {
		return Value{kind: KindTerminal}
	}
	return Value{kind: KindNested, nested: t}
}

// ValueOf converts Go data into a Value. Maps recurse, slices are keyed by index.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case *Theme:
		return Nested(x)
	case map[string]any:
		return Nested(FromMap(x))
	case map[string]string:
		m := make(map[string]any, len(x))
		for k, s := range x {
			m[k] = s
		}
		return Nested(FromMap(m))
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = e
		}
		return Nested(FromMap(m))
	case []any:
		t := New()
		for i, e := range x {
			t.Set(strconv.Itoa(i), e)
		}
		return Nested(t)
	case []string:
		t := New()
		for i, e := range x {
			t.Set(strconv.Itoa(i), e)
		}
		return Nested(t)
	default:
		return Terminal(v)
	}
}

// FromMap builds a theme from a Go map. Keys are visited in sorted order
// since Go maps carry no order of their own.
func FromMap(m map[string]any) *Theme {
	t := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.Set(k, m[k])
	}
	return t
}

// Kind reports whether the value is terminal or nested
func (v Value) Kind() Kind { return v.kind }

// IsNested reports whether the value holds a theme
func (v Value) IsNested() bool { return v.kind == KindNested }

// Theme returns the nested theme, or nil for terminals
func (v Value) Theme() *Theme { return v.nested }

// Scalar returns the raw terminal value
func (v Value) Scalar() any { return v.scalar }

// String renders a terminal the way it appears in a CSS declaration.
// Nested values have no declaration form and render empty.
func (v Value) String() string {
	if v.kind == KindNested {
		return ""
	}
	switch s := v.scalar.(type) {
	case nil:
		return "null"
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

// Set stores v under key, replacing an earlier value in place. Returns t for chaining.
func (t *Theme) Set(key string, v any) *Theme {
	t.init()
	t.entries.Set(key, ValueOf(v))
	return t
}

// Lookup returns the value stored directly under key
func (t *Theme) Lookup(key string) (Value, bool) {
	if t == nil || t.entries == nil {
		return Value{}, false
	}
	return t.entries.Get(key)
}

// Get walks a dotted path and returns the value it reaches
func (t *Theme) Get(path string) (Value, bool) {
	cur := t
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := cur.Lookup(part)
		if !ok {
			return Value{}, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		if !v.IsNested() {
			return Value{}, false
		}
		cur = v.nested
	}
	return Value{}, false
}

// Len returns the number of keys at the top level
func (t *Theme) Len() int {
	if t == nil || t.entries == nil {
		return 0
	}
	return t.entries.Len()
}

// Keys returns the top-level keys in traversal order
func (t *Theme) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.Each(func(key string, _ Value) {
		keys = append(keys, key)
	})
	return keys
}

// Each calls fn for every top-level entry in traversal order
func (t *Theme) Each(fn func(key string, v Value)) {
	if t == nil || t.entries == nil {
		return
	}
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a deep copy
func (t *Theme) Clone() *Theme {
	out := New()
	t.Each(func(key string, v Value) {
		if v.IsNested() {
			out.Set(key, v.nested.Clone())
			return
		}
		out.Set(key, v)
	})
	return out
}

// ToMap converts the theme back into plain Go maps
func (t *Theme) ToMap() map[string]any {
	out := make(map[string]any, t.Len())
	t.Each(func(key string, v Value) {
		if v.IsNested() {
			out[key] = v.nested.ToMap()
			return
		}
		out[key] = v.scalar
	})
	return out
}

func (t *Theme) init() {
	if t.entries == nil {
		t.entries = orderedmap.New[string, Value]()
	}
}

// MarshalJSON keeps key order
func (t *Theme) MarshalJSON() ([]byte, error) {
	t.init()
	return t.entries.MarshalJSON()
}

// UnmarshalJSON decodes an object, keeping its key order
func (t *Theme) UnmarshalJSON(data []byte) error {
	t.init()
	return t.entries.UnmarshalJSON(data)
}

// UnmarshalYAML decodes a mapping, keeping its key order
func (t *Theme) UnmarshalYAML(node *yaml.Node) error {
	t.init()
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: theme must be a mapping", node.Line)
	}
	return t.entries.UnmarshalYAML(node)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsNested() {
		return v.nested.MarshalJSON()
	}
	return json.Marshal(v.scalar)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	switch data[0] {
	case '{':
		t := New()
		if err := t.UnmarshalJSON(data); err != nil {
			return err
		}
		*v = Nested(t)
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		t := New()
		for i, raw := range items {
			var item Value
			if err := item.UnmarshalJSON(raw); err != nil {
				return err
			}
			t.Set(strconv.Itoa(i), item)
		}
		*v = Nested(t)
		return nil
	}

	var scalar any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&scalar); err != nil {
		return err
	}
	if n, ok := scalar.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			scalar = i
		} else if f, err := n.Float64(); err == nil {
			scalar = f
		} else {
			scalar = n.String()
		}
	}
	*v = Terminal(scalar)
	return nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		t := New()
		if err := t.UnmarshalYAML(node); err != nil {
			return err
		}
		*v = Nested(t)
	case yaml.SequenceNode:
		t := New()
		for i, child := range node.Content {
			var item Value
			if err := item.UnmarshalYAML(child); err != nil {
				return err
			}
			t.Set(strconv.Itoa(i), item)
		}
		*v = Nested(t)
	default:
		var scalar any
		if err := node.Decode(&scalar); err != nil {
			return err
		}
		*v = Terminal(scalar)
	}
	return nil
}
