// FILE: lixenwraith/dotconf/discovery.go
package dotconf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultExtension is substituted for {extension} when no other extension is configured.
const DefaultExtension = "yaml"

// DefaultTemplates are the discovery locations used by LoadName, lowest precedence first:
// system-wide, then the user's home directory, then the current directory.
var DefaultTemplates = []string{
	"/etc/{name}.{extension}",
	"~/.{name}.{extension}",
	"./{name}.{extension}",
}

// LoadName discovers and merges configuration files for the given names using DefaultTemplates.
func LoadName(names ...string) (*Namespace, error) {
	return defaultLoader.LoadName(names...)
}

// LoadName builds the candidate paths for names across the configured templates, keeps those that
// exist and loads them through LoadFile. Later templates take precedence over earlier ones and,
// within a template, later names take precedence over earlier ones.
// Finding nothing yields an empty Namespace, not an error.
func (l *Loader) LoadName(names ...string) (*Namespace, error) {
	paths, err := l.Discover(names...)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(paths...)
}

// Candidate is one discovery location after home directory resolution.
type Candidate struct {
	Path  string
	Found bool
}

// Lookup resolves every candidate path for names and reports whether a file exists there.
// The result is in precedence order, lowest first, and includes missing candidates.
func (l *Loader) Lookup(names ...string) ([]Candidate, error) {
	paths, err := Candidates(names, l.opts.Templates, l.opts.Extension)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(paths))
	for _, candidate := range paths {
		path := l.opts.ExpandUser(candidate)
		found := l.opts.Exists(path)
		if found {
			l.opts.Logger.Debug("config candidate found", slog.String("path", path))
		} else {
			l.opts.Logger.Debug("config candidate skipped", slog.String("path", path))
		}
		candidates = append(candidates, Candidate{Path: path, Found: found})
	}

	return candidates, nil
}

// Discover returns the existing candidate paths for names, in precedence order.
func (l *Loader) Discover(names ...string) ([]string, error) {
	candidates, err := l.Lookup(names...)
	if err != nil {
		return nil, err
	}

	var found []string
	for _, candidate := range candidates {
		if candidate.Found {
			found = append(found, candidate.Path)
		}
	}
	return found, nil
}

// Candidates expands every template for every name: templates in the outer loop, names in the inner.
// For templates T1, T2 and names N1, N2 the order is T1×N1, T1×N2, T2×N1, T2×N2.
// Home directory markers are left in place.
func Candidates(names []string, templates []string, extension string) ([]string, error) {
	for _, tmpl := range templates {
		if err := validateTemplate(tmpl); err != nil {
			return nil, err
		}
	}

	candidates := make([]string, 0, len(templates)*len(names))
	for _, tmpl := range templates {
		for _, name := range names {
			replacer := strings.NewReplacer("{name}", name, "{extension}", extension)
			candidates = append(candidates, replacer.Replace(tmpl))
		}
	}

	return candidates, nil
}

// validateTemplate requires a {name} placeholder and rejects any placeholder other than {name} and {extension}.
func validateTemplate(tmpl string) error {
	if !strings.Contains(tmpl, "{name}") {
		return fmt.Errorf("%w: %q has no {name} placeholder", ErrInvalidTemplate, tmpl)
	}

	rest := tmpl
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return nil
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return fmt.Errorf("%w: %q has an unterminated placeholder", ErrInvalidTemplate, tmpl)
		}
		switch placeholder := rest[start : start+end+1]; placeholder {
		case "{name}", "{extension}":
		default:
			return fmt.Errorf("%w: %q has unknown placeholder %s", ErrInvalidTemplate, tmpl, placeholder)
		}
		rest = rest[start+end+1:]
	}
}

// expandUser resolves "~" and "~/..." against the user's home directory.
// The path is returned unchanged when it has no such prefix or the home directory is unknown.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// fileExists reports whether a regular file is present at path on fsys.
func fileExists(fsys afero.Fs) func(string) bool {
	return func(path string) bool {
		info, err := fsys.Stat(path)
		return err == nil && !info.IsDir()
	}
}

// XDGTemplates returns discovery templates following the XDG base directory layout,
// lowest precedence first: $XDG_CONFIG_DIRS entries (or /etc/xdg), /etc,
// $XDG_CONFIG_HOME (or ~/.config), then the current directory.
func XDGTemplates() []string {
	var dirs []string

	// XDG_CONFIG_DIRS lists the most important directory first, so reverse it
	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		list := filepath.SplitList(xdgDirs)
		for i := len(list) - 1; i >= 0; i-- {
			if list[i] != "" {
				dirs = append(dirs, list[i])
			}
		}
	} else {
		dirs = append(dirs, "/etc/xdg")
	}
	dirs = append(dirs, "/etc")

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		dirs = append(dirs, xdgHome)
	} else {
		dirs = append(dirs, "~/.config")
	}

	templates := make([]string, 0, len(dirs)+1)
	for _, dir := range dirs {
		templates = append(templates, strings.TrimSuffix(dir, "/")+"/{name}.{extension}")
	}
	return append(templates, "./{name}.{extension}")
}
