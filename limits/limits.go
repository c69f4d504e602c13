// Package limits enforces result-size safety over arbitrary backend
// responses: a pre-flight ceiling on requested limits, and a post-hoc
// recursive trim over already-received JSON values. The two modes are
// never combined within one operation.
package limits

import (
	"fmt"
	"sort"
	"strings"
)

// Ceiling is the maximum row/array count allowed in a single response
// unless explicitly overridden.
const Ceiling = 100

// LimitError reports a request whose limit violates the ceiling policy.
// It is raised before any network call.
type LimitError struct {
	Limit int
}

func (e *LimitError) Error() string {
	if e.Limit <= 0 {
		return fmt.Sprintf("an explicit limit of at most %d is required, or set the override flag", Ceiling)
	}

	return fmt.Sprintf("limit %d exceeds the ceiling of %d, lower it or set the override flag", e.Limit, Ceiling)
}

// EnforceCeiling is the pre-flight mode: the request must carry an
// explicit limit no greater than Ceiling, or the override flag. A limit
// of zero or less means no limit was given.
func EnforceCeiling(limit int, override bool) error {
	if override {
		return nil
	}
	if limit <= 0 || limit > Ceiling {
		return &LimitError{Limit: limit}
	}

	return nil
}

// Truncation records one array the post-hoc trim shortened.
type Truncation struct {
	Path        string
	OriginalLen int
}

// Trim is the post-hoc mode: recursively walk a decoded JSON value and
// truncate every array longer than Ceiling, recording its path and
// original length. With override set the value passes through untouched.
// The input is never mutated; trimmed containers are rebuilt.
func Trim(value any, override bool) (any, []Truncation) {
	if override {
		return value, nil
	}

	var truncations []Truncation
	trimmed := trimNode(value, "", &truncations)

	return trimmed, truncations
}

func trimNode(value any, path string, truncations *[]Truncation) any {
	switch node := value.(type) {
	case []any:
		if len(node) > Ceiling {
			recordPath := path
			if recordPath == "" {
				recordPath = "result"
			}
			*truncations = append(*truncations, Truncation{Path: recordPath, OriginalLen: len(node)})
			node = node[:Ceiling]
		}
		out := make([]any, len(node))
		for i, elem := range node {
			out[i] = trimNode(elem, fmt.Sprintf("%s[%d]", path, i), truncations)
		}

		return out
	case map[string]any:
		keys := make([]string, 0, len(node))
		for key := range node {
			keys = append(keys, key)
		}
		// deterministic truncation paths
		sort.Strings(keys)

		out := make(map[string]any, len(node))
		for _, key := range keys {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			out[key] = trimNode(node[key], childPath, truncations)
		}

		return out
	default:
		return value
	}
}

// Warning renders a human-readable summary of every truncation, suitable
// for attaching to the shaped response.
func Warning(truncations []Truncation) string {
	if len(truncations) == 0 {
		return ""
	}

	parts := make([]string, 0, len(truncations))
	for _, t := range truncations {
		parts = append(parts, fmt.Sprintf("%s (%d rows trimmed to %d)", t.Path, t.OriginalLen, Ceiling))
	}

	return "large arrays were truncated: " + strings.Join(parts, ", ")
}
