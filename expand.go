// FILE: lixenwraith/dotconf/expand.go
package dotconf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// expandKeys turns compound keys ("some.other.key") into nested maps, recursively.
// The result contains no key with a delimiter in it and shares no maps with data.
//
// Go maps carry no order, so keys are applied shallow before deep and then lexically:
// a more specific key wins over a plain one regardless of map order. Parsed text is
// expanded in document order by expandNode and expandJSON instead.
func expandKeys(data map[string]any) map[string]any {
	result := make(map[string]any, len(data))

	for _, key := range expansionOrder(data) {
		value := data[key]
		if sub, isMap := value.(map[string]any); isMap {
			value = expandKeys(sub)
		} else {
			value = copyValue(value)
		}
		setNestedValue(result, strings.Split(key, Delimiter), value)
	}

	return result
}

func expansionOrder(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		di := strings.Count(keys[i], Delimiter)
		dj := strings.Count(keys[j], Delimiter)
		if di != dj {
			return di < dj
		}
		return keys[i] < keys[j]
	})

	return keys
}

// expandNode converts a parsed YAML node into plain values, expanding the compound keys of
// every mapping in document order so that a later key wins over an earlier one, as it would
// on a second read of the same text. Mappings inside sequences are decoded as they are.
func expandNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return expandNode(node.Content[0])
	case yaml.AliasNode:
		return expandNode(node.Alias)
	case yaml.MappingNode:
		return expandMappingNode(node)
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

// mergeTag marks the YAML "<<" merge key.
const mergeTag = "!!merge"

func expandMappingNode(node *yaml.Node) (map[string]any, error) {
	result := make(map[string]any, len(node.Content)/2)

	// Merge keys ("<<: *base") lay down values the explicit keys then override
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].ShortTag() != mergeTag {
			continue
		}
		sources := []*yaml.Node{node.Content[i+1]}
		if node.Content[i+1].Kind == yaml.SequenceNode {
			sources = node.Content[i+1].Content
		}
		// Earlier entries of a merge sequence take precedence
		for j := len(sources) - 1; j >= 0; j-- {
			merged, err := expandNode(sources[j])
			if err != nil {
				return nil, err
			}
			mergedMap, isMap := merged.(map[string]any)
			if !isMap {
				return nil, fmt.Errorf("line %d: merge key value must be a mapping", sources[j].Line)
			}
			result = mergePair(result, mergedMap)
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.ShortTag() == mergeTag {
			continue
		}

		key, err := nodeKey(keyNode)
		if err != nil {
			return nil, err
		}
		value, err := expandNode(valueNode)
		if err != nil {
			return nil, err
		}
		setNestedValue(result, strings.Split(key, Delimiter), value)
	}

	return result, nil
}

// nodeKey renders a mapping key node as text.
func nodeKey(node *yaml.Node) (string, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}

	var key any
	if err := node.Decode(&key); err != nil {
		return "", err
	}
	return fmt.Sprint(key), nil
}

// expandJSON reads one JSON value from decoder, expanding object keys in document order.
// expand is false below arrays, whose objects are kept as written.
func expandJSON(decoder *json.Decoder, expand bool) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, isDelim := token.(json.Delim)
	if !isDelim {
		return token, nil
	}

	switch delim {
	case '{':
		result := make(map[string]any)
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			key := keyToken.(string)

			value, err := expandJSON(decoder, expand)
			if err != nil {
				return nil, err
			}
			if expand {
				setNestedValue(result, strings.Split(key, Delimiter), value)
			} else {
				result[key] = value
			}
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return result, nil

	case '[':
		result := make([]any, 0)
		for decoder.More() {
			value, err := expandJSON(decoder, false)
			if err != nil {
				return nil, err
			}
			result = append(result, value)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return result, nil
	}

	return nil, fmt.Errorf("unexpected JSON delimiter %q", delim)
}
