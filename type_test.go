// FILE: lixenwraith/dotconf/type_test.go
package dotconf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypedGetters tests conversions performed by the typed accessors
func TestTypedGetters(t *testing.T) {
	ns := New(map[string]any{
		"server": map[string]any{
			"host":    "localhost",
			"port":    8080,
			"ratio":   0.75,
			"enabled": true,
		},
		"strings": map[string]any{
			"port":    "9090",
			"hex":     "0x1F",
			"enabled": "false",
			"ratio":   "1.5",
		},
		"empty":   nil,
		"timeout": 5 * time.Second,
	})

	t.Run("String", func(t *testing.T) {
		s, err := ns.GetString("server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", s)

		s, err = ns.GetString("server.port")
		require.NoError(t, err)
		assert.Equal(t, "8080", s)

		s, err = ns.GetString("server.ratio")
		require.NoError(t, err)
		assert.Equal(t, "0.75", s)

		s, err = ns.GetString("empty")
		require.NoError(t, err)
		assert.Equal(t, "", s)

		s, err = ns.GetString("timeout")
		require.NoError(t, err)
		assert.Equal(t, "5s", s)
	})

	t.Run("Int64", func(t *testing.T) {
		i, err := ns.GetInt64("server.port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), i)

		i, err = ns.GetInt64("strings.port")
		require.NoError(t, err)
		assert.Equal(t, int64(9090), i)

		i, err = ns.GetInt64("strings.hex")
		require.NoError(t, err)
		assert.Equal(t, int64(31), i)

		_, err = ns.GetInt64("server.host")
		assert.Error(t, err)

		_, err = ns.GetInt64("empty")
		assert.Error(t, err)
	})

	t.Run("Bool", func(t *testing.T) {
		b, err := ns.GetBool("server.enabled")
		require.NoError(t, err)
		assert.True(t, b)

		b, err = ns.GetBool("strings.enabled")
		require.NoError(t, err)
		assert.False(t, b)

		b, err = ns.GetBool("server.port")
		require.NoError(t, err)
		assert.True(t, b)

		_, err = ns.GetBool("empty")
		assert.Error(t, err)
	})

	t.Run("Float64", func(t *testing.T) {
		f, err := ns.GetFloat64("server.ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.75, f)

		f, err = ns.GetFloat64("server.port")
		require.NoError(t, err)
		assert.Equal(t, 8080.0, f)

		f, err = ns.GetFloat64("strings.ratio")
		require.NoError(t, err)
		assert.Equal(t, 1.5, f)

		_, err = ns.GetFloat64("server.host")
		assert.Error(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ns.GetString("server.missing")
		assert.ErrorIs(t, err, ErrNotConfigured)

		_, err = ns.GetInt64("does.not.exist")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("Section", func(t *testing.T) {
		_, err := ns.GetString("server")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotConfigured)
	})
}
