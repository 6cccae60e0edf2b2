package goshape

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeUnknownKey  = "unknown_key"
	CodeNotFrozen   = "not_frozen"
	CodeNotAShape   = "not_a_shape"
	CodeParseError  = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dotted property path (for example: api.field3.who).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending field lists, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"owner":"Form","extra":[...]})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		p := it.Path
		if p == "" {
			p = "."
		}
		// e.g. unknown_key at api.field3
		fmt.Fprintf(b, "%s at %s", it.Code, p)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// JoinPath renders a child property under a dotted base path.
func JoinPath(base, name string) string {
	if base == "" {
		return name
	}
	if name == "" {
		return base
	}
	return base + "." + name
}

// RebaseIssues re-parents every issue path under the given base so that nested
// failures surface with their fully qualified dotted path.
func RebaseIssues(iss Issues, base string) Issues {
	if base == "" || len(iss) == 0 {
		return iss
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		it.Path = JoinPath(base, it.Path)
		out = append(out, it)
	}
	return out
}
