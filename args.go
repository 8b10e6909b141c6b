// File: lixenwraith/dotconf/args.go
package dotconf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseArgs turns "--key.sub value", "--key.sub=value" and bare "--flag" (true) arguments
// into an expanded mapping. Anything not starting with "--" is ignored, as is a lone "--".
func parseArgs(args []string) (map[string]any, error) {
	result := make(map[string]any)

	for i := 0; i < len(args); i++ {
		flag, isFlag := strings.CutPrefix(args[i], "--")
		if !isFlag || flag == "" {
			continue
		}

		key, value, inline := strings.Cut(flag, "=")
		if !inline {
			// The next argument is the value unless it is another flag
			value = "true"
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
				i++
				value = args[i]
			}
		}

		segments, err := keySegments(key)
		if err != nil {
			return nil, err
		}
		setNestedValue(result, segments, parseValue(value))
	}

	return result, nil
}

// keySegments splits a dotted command-line key and rejects empty or malformed segments.
func keySegments(key string) ([]string, error) {
	segments := strings.Split(key, Delimiter)
	for _, segment := range segments {
		if !isValidKeySegment(segment) {
			return nil, fmt.Errorf("invalid command-line key segment %q in path %q", segment, key)
		}
	}
	return segments, nil
}

// parseValue infers a scalar from text: "true"/"false" in any case, then a finite number,
// then a double-quoted string with its quotes removed. Everything else stays text,
// including "1" as a number rather than a boolean and "nan" or "inf" as words.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return normalizeValue(v)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v
	}

	if unquoted, found := strings.CutPrefix(s, `"`); found && len(s) >= 2 {
		if inner, closed := strings.CutSuffix(unquoted, `"`); closed {
			return inner
		}
	}
	return s
}
