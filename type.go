// File: lixenwraith/dotconf/type.go
package dotconf

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// leaf resolves path to a non-section value.
func (n *Namespace) leaf(path string) (any, error) {
	val := n.Path(path)
	if !IsConfigured(val) {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, path)
	}
	if _, isSection := val.(*Namespace); isSection {
		return nil, fmt.Errorf("path %s refers to a section, not a value", path)
	}
	return val, nil
}

// decodeLeaf converts the value at path into target using mapstructure's weak typing:
// numeric strings parse (base prefixes included), booleans become 1/0 and numbers are
// true when non-zero. A null value is only accepted for string targets, as "".
func (n *Namespace) decodeLeaf(path string, target any) error {
	val, err := n.leaf(path)
	if err != nil {
		return err
	}

	switch v := val.(type) {
	case nil:
		if _, isString := target.(*string); isString {
			return nil
		}
		return fmt.Errorf("value for path %s is null, cannot convert to %T", path, target)
	case fmt.Stringer:
		// Durations and times read as their text form
		if s, isString := target.(*string); isString {
			*s = v.String()
			return nil
		}
	}

	if err := mapstructure.WeakDecode(val, target); err != nil {
		return fmt.Errorf("cannot convert %T for path %s: %w", val, path, err)
	}
	return nil
}

// GetString retrieves a string value by dotted path.
func (n *Namespace) GetString(path string) (string, error) {
	var s string
	err := n.decodeLeaf(path, &s)
	return s, err
}

// GetInt64 retrieves an int64 value by dotted path. Floats are truncated.
func (n *Namespace) GetInt64(path string) (int64, error) {
	var i int64
	err := n.decodeLeaf(path, &i)
	return i, err
}

// GetBool retrieves a boolean value by dotted path.
func (n *Namespace) GetBool(path string) (bool, error) {
	var b bool
	err := n.decodeLeaf(path, &b)
	return b, err
}

// GetFloat64 retrieves a float64 value by dotted path.
func (n *Namespace) GetFloat64(path string) (float64, error) {
	var f float64
	err := n.decodeLeaf(path, &f)
	return f, err
}
