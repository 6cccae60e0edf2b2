package goshape

import (
	"github.com/reoring/goshape/i18n"
)

// node is implemented by the freezable containers of the value model.
type node interface {
	Frozen() bool
	freeze()
	eachChild(fn func(name string, v any))
}

// DeepFreeze marks v and, recursively, every reachable object- or list-valued
// field as immutable, then returns the same reference. Primitives and function
// values are conceptually already immutable and pass through untouched. Cyclic
// graphs are handled with a per-call visited set, so a single invocation
// always terminates; a field whose computed accessor panics is skipped as if
// the field did not exist.
func DeepFreeze(v any) any {
	deepFreeze(v, map[node]struct{}{})
	return v
}

func deepFreeze(v any, seen map[node]struct{}) {
	n, ok := v.(node)
	if !ok {
		return
	}
	if _, visited := seen[n]; visited {
		return
	}
	seen[n] = struct{}{}
	n.freeze()
	n.eachChild(func(_ string, child any) {
		deepFreeze(child, seen)
	})
}

// IsDeeplyFrozen reports whether v and every reachable object- or list-valued
// field is frozen. Primitives and function values count as frozen.
func IsDeeplyFrozen(v any) bool {
	return CheckFrozen(v, "") == nil
}

// CheckFrozen verifies that v is deeply frozen, reporting the first non-frozen
// node found as Issues carrying the fully qualified dotted path under the
// given root path (for example: api.field3.who). Cycles terminate via a
// per-call visited set and panicking accessors are treated as absent fields,
// never as failures.
func CheckFrozen(v any, path string) error {
	return checkFrozen(v, path, map[node]struct{}{})
}

func checkFrozen(v any, path string, seen map[node]struct{}) error {
	n, ok := v.(node)
	if !ok {
		return nil
	}
	if _, visited := seen[n]; visited {
		return nil
	}
	seen[n] = struct{}{}
	if !n.Frozen() {
		return Issues{{
			Path:    path,
			Code:    CodeNotFrozen,
			Message: i18n.T(CodeNotFrozen, nil),
			Hint:    "deep-freeze the value or declare the field without Frozen()",
		}}
	}
	var err error
	n.eachChild(func(name string, child any) {
		if err != nil {
			return
		}
		err = checkFrozen(child, JoinPath(path, name), seen)
	})
	return err
}
