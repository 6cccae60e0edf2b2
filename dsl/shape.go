package dsl

import (
	"fmt"
	"sort"
	"strings"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/check"
	"github.com/reoring/goshape/i18n"
)

// ShapeBuilder accumulates field declarations in order.
type ShapeBuilder struct {
	fields []goshape.DeclField
}

// Shape creates a new shape builder.
func Shape() *ShapeBuilder {
	return &ShapeBuilder{}
}

// Field declares a field with its validator.
func (b *ShapeBuilder) Field(name string, v goshape.Validator) *ShapeBuilder {
	b.fields = append(b.fields, goshape.DeclField{Name: name, Validator: v})
	return b
}

// Build validates the builder and returns the shape validator.
func (b *ShapeBuilder) Build() (*ShapeValidator, error) {
	for _, f := range b.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("goshape/dsl: shape field with empty name")
		}
		if f.Validator == nil {
			return nil, fmt.Errorf("goshape/dsl: shape field %q has a nil validator", f.Name)
		}
	}
	return &ShapeValidator{decl: goshape.NewDecl(b.fields...)}, nil
}

// MustBuild is like Build but panics on error.
func (b *ShapeBuilder) MustBuild() *ShapeValidator {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ShapeValidator is the closed-world structural validator over a shape
// declaration. The zero modifiers pass on absent candidates; Required and
// Frozen return stricter validators sharing the same declaration, so
// FromShape can recover the shape from any composition.
type ShapeValidator struct {
	decl     *goshape.Decl
	required bool
	frozen   bool
}

var _ goshape.ShapeCarrier = (*ShapeValidator)(nil)

// ShapeDecl exposes the underlying declaration to the reshape machinery.
func (s *ShapeValidator) ShapeDecl() *goshape.Decl { return s.decl }

// Required returns a validator that additionally fails on an absent
// candidate.
func (s *ShapeValidator) Required() *ShapeValidator {
	c := *s
	c.required = true
	return &c
}

// Frozen returns a validator that additionally requires the candidate and
// everything reachable from it to be deeply frozen. The required check, when
// composed, still runs first.
func (s *ShapeValidator) Frozen() *ShapeValidator {
	c := *s
	c.frozen = true
	return &c
}

// Check implements the host validator protocol.
func (s *ShapeValidator) Check(props *goshape.Object, fieldName, ownerName string) error {
	val, ok := props.Get(fieldName)
	if !ok || val == nil {
		if s.required {
			return requiredIssue(fieldName, ownerName)
		}
		return nil
	}
	if s.frozen {
		if err := goshape.CheckFrozen(val, fieldName); err != nil {
			return err
		}
	}
	cand, isObj := val.(*goshape.Object)
	if !isObj {
		return invalidTypeIssue(fieldName, ownerName, "object", val)
	}
	if err := check.Fields(s.decl, cand, ownerName); err != nil {
		iss, _ := goshape.AsIssues(err)
		return goshape.RebaseIssues(iss, fieldName)
	}
	var extra []string
	for _, k := range cand.Keys() {
		if !s.decl.Has(k) {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return goshape.Issues{{
		Path:    fieldName,
		Code:    goshape.CodeUnknownKey,
		Message: i18n.T(goshape.CodeUnknownKey, nil),
		Hint:    fmt.Sprintf("%s.%s has undeclared fields: %s", ownerName, fieldName, strings.Join(extra, ", ")),
		Params:  map[string]any{"owner": ownerName, "field": fieldName, "extra": extra},
	}}
}
