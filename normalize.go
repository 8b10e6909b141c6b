// FILE: lixenwraith/dotconf/normalize.go
package dotconf

import (
	"encoding/json"
	"fmt"
	"math"
)

// normalizeValue converts parser output into the value shapes a Namespace holds:
// map[string]any for mappings, []any for sequences, int for integers that fit, float64 for other numbers.
// Every format decodes to the same tree, so equal documents compare equal whatever their syntax.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeMap(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	case []map[string]any:
		// TOML arrays of tables
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeMap(item)
		}
		return out
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return normalizeValue(i)
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v)
		}
		return v
	case uint64:
		if v <= math.MaxInt {
			return int(v)
		}
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case uint:
		if uint64(v) <= math.MaxInt {
			return int(v)
		}
		return v
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, item := range m {
		out[key] = normalizeValue(item)
	}
	return out
}

// normalizeDocument normalizes a parsed document and requires its top level to be a mapping.
// An empty document is an empty mapping.
func normalizeDocument(doc any) (map[string]any, error) {
	if doc == nil {
		return make(map[string]any), nil
	}

	m, isMap := normalizeValue(doc).(map[string]any)
	if !isMap {
		return nil, fmt.Errorf("%w, got %T", ErrNotMapping, doc)
	}
	return m, nil
}
