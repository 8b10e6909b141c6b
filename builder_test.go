// FILE: lixenwraith/dotconf/builder_test.go
package dotconf

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	type Config struct {
		Host    string        `yaml:"host"`
		Port    int           `yaml:"port"`
		Timeout time.Duration `yaml:"timeout"`
	}

	t.Run("BasicBuilder", func(t *testing.T) {
		defaults := &Config{
			Host: "localhost",
			Port: 8080,
		}

		ns, err := NewBuilder().
			WithDefaults(defaults).
			Build()

		require.NoError(t, err)
		assert.Equal(t, "localhost", ns.Get("host"))
		assert.Equal(t, 8080, ns.Get("port"))
	})

	t.Run("MapDefaults", func(t *testing.T) {
		ns, err := NewBuilder().
			WithDefaults(map[string]any{"server.port": 80}).
			Build()

		require.NoError(t, err)
		assert.Equal(t, 80, ns.Path("server.port"))
	})

	t.Run("InvalidDefaults", func(t *testing.T) {
		_, err := NewBuilder().WithDefaults(42).Build()
		assert.Error(t, err)
	})

	t.Run("Precedence", func(t *testing.T) {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.yaml"), []byte("host: namehost\nport: 1000\nname_only: true\n"), 0644))
		configFile := filepath.Join(tmpDir, "override.toml")
		require.NoError(t, os.WriteFile(configFile, []byte("host = \"filehost\"\nport = 2000\n"), 0644))

		t.Setenv("BLDTEST_PORT", "3000")

		ns, err := NewBuilder().
			WithDefaults(&Config{Host: "defaulthost", Port: 1, Timeout: time.Second}).
			WithTemplates(filepath.Join(tmpDir, "{name}.{extension}")).
			WithNames("app").
			WithFiles(configFile).
			WithEnvPrefix("BLDTEST_").
			WithArgs([]string{"--host=clihost"}).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "clihost", ns.Get("host"))
		assert.Equal(t, 3000, ns.Get("port"))
		assert.Equal(t, true, ns.Get("name_only"))
		assert.Equal(t, time.Second, ns.Get("timeout"))
	})

	t.Run("CustomSources", func(t *testing.T) {
		t.Setenv("BLDCUSTOM_HOST", "envhost")

		ns, err := NewBuilder().
			WithDefaults(map[string]any{"host": "default", "port": 1}).
			WithEnvPrefix("BLDCUSTOM_").
			WithArgs([]string{"--host", "clihost"}).
			WithSources(SourceEnv, SourceCLI, SourceDefault).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "envhost", ns.Get("host"))
		assert.Equal(t, 1, ns.Get("port"))

		// Sources left out are not loaded
		ns, err = NewBuilder().
			WithDefaults(map[string]any{"host": "default"}).
			WithArgs([]string{"--host", "clihost"}).
			WithSources(SourceDefault).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "default", ns.Get("host"))
	})

	t.Run("UnknownSource", func(t *testing.T) {
		_, err := NewBuilder().WithSources(Source("remote")).Build()
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewBuilder().WithFiles(filepath.Join(t.TempDir(), "missing.yaml")).Build()
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("CLIParseError", func(t *testing.T) {
		_, err := NewBuilder().WithArgs([]string{"--bad..key=1"}).Build()
		assert.ErrorIs(t, err, ErrCLIParse)
	})

	t.Run("MemoryFsAndLogging", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/etc/svc.json", []byte(`{"db.host": "pg"}`), 0644))

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		ns, err := NewBuilder().
			WithFs(fsys).
			WithLogger(logger).
			WithTemplates("/etc/{name}.{extension}").
			WithExtension("json").
			WithFormat(FormatJSON).
			WithNames("svc").
			Build()
		require.NoError(t, err)

		assert.Equal(t, "pg", ns.Path("db.host"))
		assert.Contains(t, buf.String(), "config layer applied")
		assert.Contains(t, buf.String(), "source=name")
	})
}

// TestBuilderValidation tests validators run against the merged Namespace
func TestBuilderValidation(t *testing.T) {
	t.Run("Passes", func(t *testing.T) {
		ns, err := NewBuilder().
			WithDefaults(map[string]any{"server": map[string]any{"port": 8080}}).
			WithValidator(Required("server.port")).
			WithValidator(func(ns *Namespace) error {
				port, err := ns.GetInt64("server.port")
				if err != nil {
					return err
				}
				if port < 1024 {
					return errors.New("port must be unprivileged")
				}
				return nil
			}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, 8080, ns.Path("server.port"))
	})

	t.Run("Fails", func(t *testing.T) {
		_, err := NewBuilder().
			WithDefaults(map[string]any{"server": map[string]any{"port": 8080}}).
			WithValidator(Required("server.port", "server.host", "db.url")).
			Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.Contains(t, err.Error(), "server.host, db.url")
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().
				WithValidator(func(*Namespace) error { return errors.New("always") }).
				MustBuild()
		})
	})
}

// TestBuildAndScan tests building directly into a struct
func TestBuildAndScan(t *testing.T) {
	type Config struct {
		Server struct {
			Host    string        `yaml:"host"`
			Port    int           `yaml:"port"`
			Timeout time.Duration `yaml:"timeout"`
		} `yaml:"server"`
		Debug bool `yaml:"debug"`
	}

	var defaults Config
	defaults.Server.Host = "localhost"
	defaults.Server.Port = 8080
	defaults.Server.Timeout = 30 * time.Second

	var cfg Config
	ns, err := NewBuilder().
		WithDefaults(defaults).
		WithArgs([]string{"--server.port=9090", "--server.timeout", "5s", "--debug"}).
		BuildAndScan(&cfg)
	require.NoError(t, err)
	require.NotNil(t, ns)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.Debug)

	_, err = NewBuilder().BuildAndScan(cfg)
	assert.Error(t, err)
}
