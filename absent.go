// FILE: lixenwraith/dotconf/absent.go
package dotconf

// notConfiguredText is the fixed representation of the absent value.
const notConfiguredText = "(not configured)"

// Absent is the type of the value returned for any configuration path that does not exist.
// Every lookup on an Absent returns NotConfigured again, so chains through missing keys never fail.
type Absent struct{}

// NotConfigured is the single absent value. All absent lookups return it and compare equal to it.
var NotConfigured = Absent{}

// IsConfigured reports whether v is anything other than NotConfigured.
func IsConfigured(v any) bool {
	_, absent := v.(Absent)
	return !absent
}

// Get always returns NotConfigured.
func (Absent) Get(string) any { return NotConfigured }

// Sub always returns NotConfigured.
func (Absent) Sub(string) Node { return NotConfigured }

// Path always returns NotConfigured.
func (Absent) Path(string) any { return NotConfigured }

// Has always returns false.
func (Absent) Has(string) bool { return false }

// Len always returns 0.
func (Absent) Len() int { return 0 }

// Keys always returns nil.
func (Absent) Keys() []string { return nil }

func (Absent) String() string { return notConfiguredText }

// GoString keeps %#v identical to %v.
func (Absent) GoString() string { return notConfiguredText }
