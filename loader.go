// FILE: lixenwraith/dotconf/loader.go
package dotconf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"

	"github.com/spf13/afero"
)

// LoadOptions configures how documents are located and parsed.
type LoadOptions struct {
	// Format forces a parser for every input. FormatAuto (default) parses as YAML,
	// except files with a .toml/.tml extension.
	Format Format

	// Templates are the discovery locations for LoadName, lowest precedence first.
	// Default: DefaultTemplates
	Templates []string

	// Extension substituted for {extension} in Templates.
	// Default: DefaultExtension
	Extension string

	// Fs is the filesystem files are read from. Default: the OS filesystem.
	Fs afero.Fs

	// Exists reports whether a discovery candidate is present.
	// If nil, a regular file must exist at the path on Fs.
	Exists func(path string) bool

	// ExpandUser resolves a leading "~" in a discovery candidate.
	// If nil, the current user's home directory is used.
	ExpandUser func(path string) string

	// Logger receives debug records about discovery and loading. Default: discarded.
	Logger *slog.Logger
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Format:    FormatAuto,
		Templates: slices.Clone(DefaultTemplates),
		Extension: DefaultExtension,
	}
}

// Loader turns documents into a Namespace. It holds no state between calls.
type Loader struct {
	opts LoadOptions
}

// NewLoader creates a Loader, filling unset options with defaults.
func NewLoader(opts LoadOptions) *Loader {
	if opts.Format == "" {
		opts.Format = FormatAuto
	}
	if opts.Templates == nil {
		opts.Templates = DefaultTemplates
	}
	// Later changes to the caller's slice must not reach this Loader
	opts.Templates = slices.Clone(opts.Templates)
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Exists == nil {
		opts.Exists = fileExists(opts.Fs)
	}
	if opts.ExpandUser == nil {
		opts.ExpandUser = expandUser
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{opts: opts}
}

var defaultLoader = NewLoader(DefaultLoadOptions())

// Load reads each reader to the end, in order, and merges the documents.
// Later readers take precedence. Readers are not closed.
func Load(readers ...io.Reader) (*Namespace, error) {
	return defaultLoader.Load(readers...)
}

// LoadText parses each text, in order, and merges the documents. Later texts take precedence.
func LoadText(texts ...string) (*Namespace, error) {
	return defaultLoader.LoadText(texts...)
}

// LoadFile reads each file, in order, and merges the documents. Later files take precedence.
func LoadFile(paths ...string) (*Namespace, error) {
	return defaultLoader.LoadFile(paths...)
}

// Load reads each reader to the end, in order, and merges the documents.
func (l *Loader) Load(readers ...io.Reader) (*Namespace, error) {
	docs := make([]map[string]any, 0, len(readers))
	for i, r := range readers {
		source := readerName(r, i)

		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read config from %s: %w", source, err)
		}

		doc, err := l.parse(source, "", data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return wrap(mergeMaps(docs...)), nil
}

// LoadText parses each text, in order, and merges the documents.
func (l *Loader) LoadText(texts ...string) (*Namespace, error) {
	docs := make([]map[string]any, 0, len(texts))
	for i, text := range texts {
		doc, err := l.parse("text #"+strconv.Itoa(i+1), "", []byte(text))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return wrap(mergeMaps(docs...)), nil
}

// LoadFile reads each file, in order, and merges the documents.
// A missing file is an error wrapping ErrConfigNotFound.
func (l *Loader) LoadFile(paths ...string) (*Namespace, error) {
	docs := make([]map[string]any, 0, len(paths))
	for _, path := range paths {
		data, err := l.readFile(path)
		if err != nil {
			return nil, err
		}

		doc, err := l.parse(path, path, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return wrap(mergeMaps(docs...)), nil
}

// readFile reads a whole file; the handle is released before returning.
func (l *Loader) readFile(path string) ([]byte, error) {
	file, err := l.opts.Fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	l.opts.Logger.Debug("config file read", slog.String("path", path), slog.Int("bytes", len(data)))
	return data, nil
}

// parse decodes one document and expands its compound keys.
func (l *Loader) parse(source, path string, data []byte) (map[string]any, error) {
	format := l.opts.Format.resolve(path)

	doc, err := decode(format, data)
	if err != nil {
		return nil, &ParseError{Source: source, Format: format, Err: err}
	}

	return expandKeys(doc), nil
}

// readerName identifies a reader in errors, preferring a Name method such as *os.File has.
func readerName(r io.Reader, index int) string {
	if named, ok := r.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	return "reader #" + strconv.Itoa(index+1)
}
