// File: lixenwraith/dotconf/helper.go
package dotconf

import "strings"

// Delimiter separates the segments of a compound key or lookup path.
const Delimiter = "."

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + Delimiter + key
		}

		// Empty maps are kept as leaves so they survive a round trip
		if nestedMap, isMap := value.(map[string]any); isMap && len(nestedMap) > 0 {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// setNestedValue sets a value in a nested map following the given key segments.
// Intermediate maps are created as needed; a segment holding a non-map value is replaced by a new map.
// A map value landing on an existing map is merged into it, anything else overwrites.
func setNestedValue(nested map[string]any, segments []string, value any) {
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		next, isMap := current[segment].(map[string]any)
		if !isMap {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	lastSegment := segments[len(segments)-1]
	if incoming, isMap := value.(map[string]any); isMap {
		if existing, isMap := current[lastSegment].(map[string]any); isMap {
			current[lastSegment] = mergePair(existing, incoming)
			return
		}
	}
	current[lastSegment] = value
}

// splitPath splits a dotted lookup path into its segments. An empty path has no segments.
func splitPath(path string) []string {
	path = strings.TrimSuffix(path, Delimiter)
	if path == "" {
		return nil
	}
	return strings.Split(path, Delimiter)
}

// copyValue deep-copies maps and sequences so that no two trees share mutable state.
func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = copyValue(item)
		}
		return out
	default:
		return value
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

// isValidKeySegment checks if a single path segment is usable as a command-line key part.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	if strings.Contains(s, Delimiter) {
		return false // Segments themselves cannot contain dots
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}
