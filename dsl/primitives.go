package dsl

import (
	"encoding/json"
	"fmt"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
)

// Prim is a primitive-type field validator. The zero modifier passes on
// absent candidates; Required returns a stricter copy.
type Prim struct {
	kind     string
	accepts  func(any) bool
	required bool
}

// Required marks the primitive as required.
func (p Prim) Required() Prim {
	p.required = true
	return p
}

// Check implements the host validator protocol.
func (p Prim) Check(props *goshape.Object, fieldName, ownerName string) error {
	val, ok := props.Get(fieldName)
	if !ok || val == nil {
		if p.required {
			return requiredIssue(fieldName, ownerName)
		}
		return nil
	}
	if !p.accepts(val) {
		return invalidTypeIssue(fieldName, ownerName, p.kind, val)
	}
	return nil
}

// String accepts string-valued fields.
func String() Prim {
	return Prim{kind: "string", accepts: func(v any) bool {
		_, ok := v.(string)
		return ok
	}}
}

// Bool accepts bool-valued fields.
func Bool() Prim {
	return Prim{kind: "bool", accepts: func(v any) bool {
		_, ok := v.(bool)
		return ok
	}}
}

// Number accepts numeric fields in any of the representations the decoders
// produce.
func Number() Prim {
	return Prim{kind: "number", accepts: func(v any) bool {
		switch v.(type) {
		case int, int64, float64, json.Number:
			return true
		}
		return false
	}}
}

// Array accepts List-valued fields.
func Array() Prim {
	return Prim{kind: "array", accepts: func(v any) bool {
		_, ok := v.(*goshape.List)
		return ok
	}}
}

// ObjectAny accepts any object-valued field, without constraining its fields.
func ObjectAny() Prim {
	return Prim{kind: "object", accepts: func(v any) bool {
		_, ok := v.(*goshape.Object)
		return ok
	}}
}

// Function accepts function-valued fields: bound, method, or reshape
// capabilities.
func Function() Prim {
	return Prim{kind: "function", accepts: func(v any) bool {
		switch v.(type) {
		case goshape.Func, goshape.Method, goshape.ReshapeFunc:
			return true
		}
		return false
	}}
}

// Any accepts any present field value.
func Any() Prim {
	return Prim{kind: "any", accepts: func(any) bool { return true }}
}

func requiredIssue(fieldName, ownerName string) error {
	return goshape.Issues{{
		Path:    fieldName,
		Code:    goshape.CodeRequired,
		Message: i18n.T(goshape.CodeRequired, nil),
		Params:  map[string]any{"owner": ownerName},
	}}
}

func invalidTypeIssue(fieldName, ownerName, want string, got any) error {
	return goshape.Issues{{
		Path:    fieldName,
		Code:    goshape.CodeInvalidType,
		Message: i18n.T(goshape.CodeInvalidType, nil),
		Hint:    fmt.Sprintf("expected %s, got %T", want, got),
		Params:  map[string]any{"owner": ownerName, "expected": want},
	}}
}
