// File: lixenwraith/dotconf/convenience.go
package dotconf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Quick creates a fully layered Namespace with a single call
// Files named appName are discovered across DefaultTemplates, then overridden by
// environment variables starting with envPrefix and finally by os.Args.
// An empty envPrefix skips the environment layer.
func Quick(appName, envPrefix string) (*Namespace, error) {
	return NewBuilder().
		WithNames(appName).
		WithEnvPrefix(envPrefix).
		WithArgs(os.Args[1:]).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(appName, envPrefix string) *Namespace {
	ns, err := Quick(appName, envPrefix)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return ns
}

// Required returns a validator that checks all given paths are configured
func Required(paths ...string) ValidatorFunc {
	return func(ns *Namespace) error {
		var missing []string
		for _, path := range paths {
			if !IsConfigured(ns.Path(path)) {
				missing = append(missing, path)
			}
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: missing required configuration: %s", ErrNotConfigured, strings.Join(missing, ", "))
		}
		return nil
	}
}

// Dump writes the Namespace to w in TOML format
func (n *Namespace) Dump(w io.Writer) error {
	encoder := toml.NewEncoder(w)
	return encoder.Encode(n.data)
}

// Clone creates a deep copy of the Namespace
func (n *Namespace) Clone() *Namespace {
	return wrap(copyMap(n.data))
}
