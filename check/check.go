// Package check is the host side of the validator protocol: it runs declared
// field validators against a candidate object and reports failures as
// warnings on a configurable logger, the way a host UI framework consumes
// property validators. Validation failures are values; nothing in this
// package ever halts execution for bad data.
package check

import (
	"sync"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/i18n"
	"go.uber.org/zap"
)

// Fields runs every validator declared by d against props, in declaration
// order, merging all failures into a single Issues value. This is the
// structural check shape validators delegate to.
func Fields(d *goshape.Decl, props *goshape.Object, owner string) error {
	if d == nil {
		return nil
	}
	var iss goshape.Issues
	for _, name := range d.Names() {
		v, _ := d.Validator(name)
		if v == nil {
			continue
		}
		err := v.Check(props, name, owner)
		if err == nil {
			continue
		}
		if more, ok := goshape.AsIssues(err); ok {
			iss = goshape.AppendIssues(iss, more...)
			continue
		}
		iss = goshape.AppendIssues(iss, goshape.Issue{
			Path:    name,
			Code:    goshape.CodeParseError,
			Message: err.Error(),
			Cause:   err,
		})
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// RequiredFunc is the host's required-function validator: the field must be
// present and function-valued. It doubles as the base the reshape-slot
// placeholder is built on.
var RequiredFunc goshape.Validator = goshape.ValidatorFunc(func(props *goshape.Object, fieldName, ownerName string) error {
	v, ok := props.Get(fieldName)
	if !ok || v == nil {
		return goshape.Issues{{
			Path:    fieldName,
			Code:    goshape.CodeRequired,
			Message: i18n.T(goshape.CodeRequired, nil),
			Params:  map[string]any{"owner": ownerName},
		}}
	}
	switch v.(type) {
	case goshape.Func, goshape.Method, goshape.ReshapeFunc:
		return nil
	}
	return goshape.Issues{{
		Path:    fieldName,
		Code:    goshape.CodeInvalidType,
		Message: i18n.T(goshape.CodeInvalidType, nil),
		Hint:    "expected function",
		Params:  map[string]any{"owner": ownerName},
	}}
})

var (
	mu     sync.Mutex
	logger = zap.NewNop()
	warned = map[string]struct{}{}
)

// SetLogger replaces the warning logger. A nil logger restores the no-op
// default.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Props checks one property the way the host reporting channel does: the
// validator runs, failures are logged as warnings (once per owner/field/
// message tuple for the process lifetime), and the error is returned for
// callers that want it. Execution never halts on a validation failure.
func Props(v goshape.Validator, props *goshape.Object, fieldName, ownerName string) error {
	if v == nil {
		return nil
	}
	err := v.Check(props, fieldName, ownerName)
	if err == nil {
		return nil
	}
	iss, ok := goshape.AsIssues(err)
	if !ok {
		iss = goshape.Issues{{Path: fieldName, Code: goshape.CodeParseError, Message: err.Error(), Cause: err}}
	}
	mu.Lock()
	defer mu.Unlock()
	for _, it := range iss {
		key := ownerName + "\x00" + fieldName + "\x00" + it.Code + "\x00" + it.Path + "\x00" + it.Message
		if _, done := warned[key]; done {
			continue
		}
		warned[key] = struct{}{}
		fields := []zap.Field{
			zap.String("owner", ownerName),
			zap.String("field", fieldName),
			zap.String("code", it.Code),
			zap.String("path", it.Path),
		}
		if it.Hint != "" {
			fields = append(fields, zap.String("hint", it.Hint))
		}
		logger.Warn("failed prop type: "+it.Message, fields...)
	}
	return err
}

// ResetWarnings clears the once-per-process warning memory. Test helper.
func ResetWarnings() {
	mu.Lock()
	defer mu.Unlock()
	warned = map[string]struct{}{}
}
