// FILE: lixenwraith/dotconf/normalize_test.go
package dotconf

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 42, normalizeValue(int64(42)))
	assert.Equal(t, 7, normalizeValue(uint8(7)))
	assert.Equal(t, 42, normalizeValue(json.Number("42")))
	assert.Equal(t, 1.5, normalizeValue(json.Number("1.5")))
	assert.Equal(t, float64(float32(0.5)), normalizeValue(float32(0.5)))
	assert.Equal(t, uint64(math.MaxUint64), normalizeValue(uint64(math.MaxUint64)))

	got := normalizeValue(map[any]any{1: "one", "two": []any{int64(2)}})
	assert.Equal(t, map[string]any{"1": "one", "two": []any{2}}, got)
}

func TestNormalizeDocument(t *testing.T) {
	doc, err := normalizeDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, doc)

	_, err = normalizeDocument([]any{1})
	assert.ErrorIs(t, err, ErrNotMapping)

	_, err = normalizeDocument("scalar")
	assert.ErrorIs(t, err, ErrNotMapping)
}
