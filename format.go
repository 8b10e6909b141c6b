// FILE: lixenwraith/dotconf/format.go
package dotconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the parser used for input documents.
type Format string

const (
	// FormatAuto parses input as YAML, which also accepts JSON.
	// Files with a TOML extension are parsed as TOML.
	FormatAuto Format = "auto"
	// FormatYAML parses input as YAML
	FormatYAML Format = "yaml"
	// FormatJSON parses input as strict JSON
	FormatJSON Format = "json"
	// FormatTOML parses input as TOML
	FormatTOML Format = "toml"
)

// ParseFormat resolves a user-supplied format name. The empty string selects FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml", "tml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

func (f Format) label() string {
	switch f {
	case FormatYAML:
		return "YAML"
	case FormatJSON:
		return "JSON"
	case FormatTOML:
		return "TOML"
	default:
		return strings.ToUpper(string(f))
	}
}

// resolve picks the concrete parser for an input. path is empty for non-file inputs.
func (f Format) resolve(path string) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	if path != "" {
		return detectFileFormat(path)
	}
	return FormatYAML
}

// detectFileFormat determines the auto-mode parser from a file extension.
// JSON is a subset of YAML, so only TOML needs a parser of its own.
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// decode parses data with the given concrete format into a normalized mapping.
// YAML and JSON mappings come back with compound keys already expanded in document order.
func decode(format Format, data []byte) (map[string]any, error) {
	var doc any

	switch format {
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		expanded, err := expandNode(&node)
		if err != nil {
			return nil, err
		}
		doc = expanded
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve integer values
		expanded, err := expandJSON(decoder, true)
		if err != nil {
			return nil, withJSONPosition(data, err)
		}
		doc = expanded
		if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("unexpected data after top-level JSON value at offset %d", decoder.InputOffset())
		}
	case FormatTOML:
		tomlDoc := make(map[string]any)
		if err := toml.Unmarshal(data, &tomlDoc); err != nil {
			return nil, err
		}
		doc = tomlDoc
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	return normalizeDocument(doc)
}

// withJSONPosition adds line and column information to JSON syntax errors, which only carry a byte offset.
func withJSONPosition(data []byte, err error) error {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err
	}

	offset := int(syntaxErr.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	line := 1 + bytes.Count(data[:offset], []byte("\n"))
	column := offset - bytes.LastIndexByte(data[:offset], '\n')

	return fmt.Errorf("line %d, column %d: %w", line, column, err)
}
