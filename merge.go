// FILE: lixenwraith/dotconf/merge.go
package dotconf

// mergeMaps deep-merges documents into a new map. Later documents take precedence.
// It is a left fold of mergePair, so merging [a, b, c] equals merging [merge(a, b), c].
func mergeMaps(docs ...map[string]any) map[string]any {
	result := make(map[string]any)
	for _, doc := range docs {
		result = mergePair(result, doc)
	}
	return result
}

// mergePair returns a new map holding base overlaid with overlay.
// Where both sides hold a map the two are merged recursively. In every other case,
// including map against scalar in either direction, the overlay value replaces the base value.
func mergePair(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overlay))
	for key, value := range base {
		result[key] = copyValue(value)
	}

	for key, value := range overlay {
		if overlayMap, isMap := value.(map[string]any); isMap {
			if baseMap, isMap := result[key].(map[string]any); isMap {
				result[key] = mergePair(baseMap, overlayMap)
				continue
			}
		}
		result[key] = copyValue(value)
	}

	return result
}
