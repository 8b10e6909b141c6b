// FILE: lixenwraith/dotconf/namespace.go
package dotconf

import (
	"fmt"
	"reflect"
	"sort"
)

// Node is implemented by both *Namespace and Absent, so lookups can be chained
// through missing keys without checking each step.
type Node interface {
	// Get returns NotConfigured, a *Namespace for mapping values, or the raw value.
	Get(key string) any
	// Sub returns the *Namespace at key, or NotConfigured if key is absent or not a mapping.
	Sub(key string) Node
	// Path resolves a dotted path by repeated Get calls.
	Path(path string) any
	Has(key string) bool
	Len() int
	Keys() []string
}

var (
	_ Node = (*Namespace)(nil)
	_ Node = Absent{}
)

// Namespace is a read-only, dot-addressable view over a nested configuration mapping.
// It is safe for concurrent use since nothing mutates it after construction.
type Namespace struct {
	data map[string]any
}

// New builds a Namespace from a mapping. Compound keys are expanded and the input is copied,
// so later changes to data are not visible through the Namespace. A nil map is an empty Namespace.
func New(data map[string]any) *Namespace {
	if data == nil {
		return &Namespace{data: make(map[string]any)}
	}
	return &Namespace{data: expandKeys(normalizeMap(data))}
}

// wrap builds a Namespace over an already expanded map without copying.
func wrap(data map[string]any) *Namespace {
	return &Namespace{data: data}
}

// Get returns the value stored under key.
// Sequences are returned as copies; mappings are returned as *Namespace.
func (n *Namespace) Get(key string) any {
	value, exists := n.data[key]
	if !exists {
		return NotConfigured
	}

	switch v := value.(type) {
	case map[string]any:
		return wrap(v)
	case []any:
		return copyValue(v)
	default:
		return value
	}
}

// Sub returns the nested Namespace under key, or NotConfigured.
func (n *Namespace) Sub(key string) Node {
	if sub, isMap := n.data[key].(map[string]any); isMap {
		return wrap(sub)
	}
	return NotConfigured
}

// Path resolves a dotted path such as "server.tls.cert".
// Walking into an absent key or through a non-mapping value yields NotConfigured.
// The empty path returns the Namespace itself.
func (n *Namespace) Path(path string) any {
	var current any = n
	for _, segment := range splitPath(path) {
		node, isNode := current.(Node)
		if !isNode {
			return NotConfigured
		}
		current = node.Get(segment)
	}
	return current
}

// Has reports whether key is present at this level.
func (n *Namespace) Has(key string) bool {
	_, exists := n.data[key]
	return exists
}

// Len returns the number of direct keys.
func (n *Namespace) Len() int {
	return len(n.data)
}

// Keys returns the direct keys in sorted order.
func (n *Namespace) Keys() []string {
	keys := make([]string, 0, len(n.data))
	for key := range n.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether other holds the same configuration.
// other may be a *Namespace or a raw map, which is expanded before comparison.
func (n *Namespace) Equal(other any) bool {
	switch o := other.(type) {
	case *Namespace:
		if o == nil {
			return false
		}
		return reflect.DeepEqual(n.data, o.data)
	case map[string]any:
		return reflect.DeepEqual(n.data, New(o).data)
	default:
		return false
	}
}

// AsMap returns a deep copy of the underlying mapping.
func (n *Namespace) AsMap() map[string]any {
	return copyMap(n.data)
}

// Flatten returns all leaf values keyed by their dotted path.
func (n *Namespace) Flatten() map[string]any {
	return flattenMap(copyMap(n.data), "")
}

func (n *Namespace) String() string {
	return fmt.Sprintf("Namespace%v", n.data)
}
