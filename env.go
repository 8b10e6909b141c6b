// FILE: lixenwraith/dotconf/env.go
package dotconf

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
)

// EnvTransformFunc converts an environment variable name to a dotted configuration path.
// Returning "" skips the variable.
type EnvTransformFunc func(name string) string

// defaultEnvTransform creates the default environment variable transformer:
// the prefix is removed, the rest is lowercased and underscores become dots,
// so MYAPP_SERVER_PORT maps to server.port.
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(name string) string {
		path := strings.TrimPrefix(name, prefix)
		path = strings.Trim(path, "_")
		path = strings.ToLower(path)
		return strings.ReplaceAll(path, "_", Delimiter)
	}
}

// loadEnv reads the environment variables starting with prefix into an expanded mapping.
// An empty prefix is refused since it would pull in the whole process environment.
func loadEnv(prefix string, transform EnvTransformFunc) (map[string]any, error) {
	if prefix == "" {
		return nil, fmt.Errorf("environment prefix cannot be empty")
	}
	if transform == nil {
		transform = defaultEnvTransform(prefix)
	}

	provider := env.ProviderWithValue(prefix, Delimiter, func(name, value string) (string, any) {
		path := transform(name)
		if path == "" {
			return "", nil
		}
		return path, parseValue(value)
	})

	nested, err := provider.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return expandKeys(normalizeMap(nested)), nil
}
