// FILE: lixenwraith/dotconf/expand_test.go
package dotconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpandKeys tests compound key expansion
func TestExpandKeys(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		got := expandKeys(map[string]any{"a.b.c": 1})
		assert.Equal(t, map[string]any{
			"a": map[string]any{"b": map[string]any{"c": 1}},
		}, got)
	})

	t.Run("NestedCompoundKeys", func(t *testing.T) {
		got := expandKeys(map[string]any{
			"key": "value",
			"some": map[string]any{
				"other.key": []any{1, 2, 3},
			},
			"some.thing": false,
		})

		assert.Equal(t, map[string]any{
			"key": "value",
			"some": map[string]any{
				"other": map[string]any{"key": []any{1, 2, 3}},
				"thing": false,
			},
		}, got)
	})

	t.Run("SiblingsMerge", func(t *testing.T) {
		got := expandKeys(map[string]any{
			"db.host":   "localhost",
			"db.port":   5432,
			"db":        map[string]any{"user": "admin"},
			"db.pool.x": 1,
		})

		assert.Equal(t, map[string]any{
			"db": map[string]any{
				"host": "localhost",
				"port": 5432,
				"user": "admin",
				"pool": map[string]any{"x": 1},
			},
		}, got)
	})

	t.Run("DeeperKeyWinsOverScalar", func(t *testing.T) {
		got := expandKeys(map[string]any{"a": 1, "a.b": 2})
		assert.Equal(t, map[string]any{"a": map[string]any{"b": 2}}, got)
	})

	t.Run("StableAcrossRuns", func(t *testing.T) {
		input := map[string]any{"x.y": 1, "x": "scalar", "x.z.w": 2, "v": map[string]any{"a.b": 3}}
		first := expandKeys(input)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, expandKeys(input))
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := expandKeys(map[string]any{"a.b": 1, "c": map[string]any{"d.e": 2}})
		assert.Equal(t, once, expandKeys(once))
	})

	t.Run("MapsInsideListsUntouched", func(t *testing.T) {
		got := expandKeys(map[string]any{"items": []any{map[string]any{"a.b": 1}}})
		assert.Equal(t, map[string]any{"items": []any{map[string]any{"a.b": 1}}}, got)
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		inner := map[string]any{"x.y": 1}
		input := map[string]any{"a": inner}
		expandKeys(input)
		assert.Equal(t, map[string]any{"x.y": 1}, inner)
	})
}

// TestExpandDocumentOrder tests that parsed text applies compound keys in the order written
func TestExpandDocumentOrder(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			plainLast := `{"a.b": 2, "a": 1}`
			got, err := decode(format, []byte(plainLast))
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"a": 1}, got)

			compoundLast := `{"a": 1, "a.b": 2}`
			got, err = decode(format, []byte(compoundLast))
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"a": map[string]any{"b": 2}}, got)

			mapsMerge := `{"s.y": 2, "s": {"x": 1, "z.w": 3}, "l": [{"k.v": 1}]}`
			got, err = decode(format, []byte(mapsMerge))
			require.NoError(t, err)
			assert.Equal(t, map[string]any{
				"s": map[string]any{"x": 1, "y": 2, "z": map[string]any{"w": 3}},
				"l": []any{map[string]any{"k.v": 1}},
			}, got)
		})
	}

	t.Run("LoadText", func(t *testing.T) {
		ns, err := LoadText("a.b: 2\na: 1\n")
		require.NoError(t, err)
		assert.Equal(t, 1, ns.Get("a"))

		ns, err = LoadText("a: 1\na.b: 2\n")
		require.NoError(t, err)
		assert.Equal(t, 2, ns.Path("a.b"))
	})

	t.Run("YAMLMergeKeys", func(t *testing.T) {
		got, err := decode(FormatYAML, []byte(`
base: &base
  host: localhost
  port: 80
prod:
  <<: *base
  port: 443
  tls.enabled: true
`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"host": "localhost",
			"port": 443,
			"tls":  map[string]any{"enabled": true},
		}, got["prod"])
	})

	t.Run("YAMLAliasValues", func(t *testing.T) {
		got, err := decode(FormatYAML, []byte("ports: &p [1, 2]\ncopy: *p\n"))
		require.NoError(t, err)
		assert.Equal(t, []any{1, 2}, got["copy"])
	})
}
