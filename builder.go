// File: lixenwraith/dotconf/builder.go
package dotconf

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

// Source represents a configuration layer, used to define precedence
type Source string

const (
	// SourceDefault represents the defaults given to WithDefaults
	SourceDefault Source = "default"
	// SourceName represents files discovered by name across the discovery templates
	SourceName Source = "name"
	// SourceFile represents explicitly listed configuration files
	SourceFile Source = "file"
	// SourceEnv represents values loaded from environment variables
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments
	SourceCLI Source = "cli"
)

// DefaultSources is the standard precedence, highest first.
var DefaultSources = []Source{SourceCLI, SourceEnv, SourceFile, SourceName, SourceDefault}

// ValidatorFunc checks the fully merged Namespace and returns an error if it is unacceptable.
type ValidatorFunc func(ns *Namespace) error

// Builder provides a fluent interface for layering several kinds of sources into one Namespace.
type Builder struct {
	opts         LoadOptions
	sources      []Source
	defaults     any
	names        []string
	files        []string
	envPrefix    string
	envTransform EnvTransformFunc
	args         []string
	err          error
	validators   []ValidatorFunc
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultLoadOptions(),
		sources:    DefaultSources,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFormat forces the parser used for every file
func (b *Builder) WithFormat(format Format) *Builder {
	b.opts.Format = format
	return b
}

// WithTemplates sets the discovery templates used for names, lowest precedence first
func (b *Builder) WithTemplates(templates ...string) *Builder {
	b.opts.Templates = templates
	return b
}

// WithExtension sets the extension substituted into discovery templates
func (b *Builder) WithExtension(extension string) *Builder {
	b.opts.Extension = extension
	return b
}

// WithFs sets the filesystem files are discovered on and read from
func (b *Builder) WithFs(fsys afero.Fs) *Builder {
	b.opts.Fs = fsys
	return b
}

// WithLogger sets the logger for discovery and loading records
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithDefaults sets the lowest layer, either a map[string]any or a struct read through its yaml tags
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithNames adds logical configuration names to discover, later names take precedence
func (b *Builder) WithNames(names ...string) *Builder {
	b.names = append(b.names, names...)
	return b
}

// WithFiles adds explicit configuration files, later files take precedence
func (b *Builder) WithFiles(paths ...string) *Builder {
	b.files = append(b.files, paths...)
	return b
}

// WithEnvPrefix enables the environment layer for variables starting with prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	return b
}

// WithEnvTransform sets a custom environment variable name to path transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.envTransform = fn
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSources sets the precedence order for configuration sources, highest first.
// Sources left out are not loaded.
func (b *Builder) WithSources(sources ...Source) *Builder {
	for _, source := range sources {
		switch source {
		case SourceDefault, SourceName, SourceFile, SourceEnv, SourceCLI:
		default:
			b.err = fmt.Errorf("unknown configuration source %q", source)
			return b
		}
	}
	b.sources = sources
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build loads every configured source and merges them, lowest precedence first
func (b *Builder) Build() (*Namespace, error) {
	if b.err != nil {
		return nil, b.err
	}

	loader := NewLoader(b.opts)
	logger := loader.opts.Logger

	layers := make([]map[string]any, 0, len(b.sources))
	for i := len(b.sources) - 1; i >= 0; i-- {
		source := b.sources[i]

		layer, err := b.loadSource(loader, source)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}

		logger.Debug("config layer applied", slog.String("source", string(source)), slog.Int("keys", len(layer)))
		layers = append(layers, layer)
	}

	ns := wrap(mergeMaps(layers...))

	for _, validator := range b.validators {
		if err := validator(ns); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return ns, nil
}

// loadSource returns the expanded mapping for one source, or nil when the source is not configured.
func (b *Builder) loadSource(loader *Loader, source Source) (map[string]any, error) {
	switch source {
	case SourceDefault:
		switch defaults := b.defaults.(type) {
		case nil:
			return nil, nil
		case map[string]any:
			return New(defaults).data, nil
		default:
			m, err := structToMap(defaults)
			if err != nil {
				return nil, fmt.Errorf("failed to register defaults: %w", err)
			}
			return New(m).data, nil
		}

	case SourceName:
		if len(b.names) == 0 {
			return nil, nil
		}
		ns, err := loader.LoadName(b.names...)
		if err != nil {
			return nil, err
		}
		return ns.data, nil

	case SourceFile:
		if len(b.files) == 0 {
			return nil, nil
		}
		ns, err := loader.LoadFile(b.files...)
		if err != nil {
			return nil, err
		}
		return ns.data, nil

	case SourceEnv:
		if b.envPrefix == "" {
			return nil, nil
		}
		return loadEnv(b.envPrefix, b.envTransform)

	case SourceCLI:
		if len(b.args) == 0 {
			return nil, nil
		}
		parsed, err := parseArgs(b.args)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCLIParse, err)
		}
		return parsed, nil
	}

	return nil, fmt.Errorf("unknown configuration source %q", source)
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Namespace {
	ns, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return ns
}

// BuildAndScan builds the Namespace and decodes all of it into the provided target struct pointer
func (b *Builder) BuildAndScan(target any) (*Namespace, error) {
	ns, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := ns.Scan("", target); err != nil {
		return nil, fmt.Errorf("failed to scan final config into target: %w", err)
	}

	return ns, nil
}
