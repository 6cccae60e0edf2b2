package goshape

import (
	"errors"
	"fmt"

	"github.com/reoring/goshape/i18n"
)

// ErrNotAShape reports FromShape being handed a validator that carries no
// shape declaration. This is programmer misuse, surfaced immediately.
var ErrNotAShape = errors.New("goshape: fromShape called with a non-shape property type")

// ReshapeFunc is the self-reshape capability installed on a reshape-slot
// field. Invoking it derives a further-reduced instance from the object the
// capability was installed on, not from the original source. When no explicit
// option is given, the derived instance inherits the current instance's
// immutability state.
type ReshapeFunc func(next Validator, opts ...ReshapeOpt) (*Object, error)

// FromShape projects source onto exactly the fields declared by the
// validator's shape, in declaration order:
//
//   - reshape-slot fields receive a ReshapeFunc closing over the finished
//     instance;
//   - nested-shape fields recurse into the corresponding source field,
//     inheriting this call's mutability option;
//   - Method-valued fields are bound to source as their receiver;
//   - absent plain fields are omitted (a Required validator reports the gap
//     when validation runs);
//   - everything else is installed by reference.
//
// Fields present on source but not declared are never copied. The instance is
// deep-frozen unless the Mutable option is given.
func FromShape(source *Object, v Validator, opts ...ReshapeOpt) (*Object, error) {
	decl, ok := DeclOf(v)
	if !ok {
		return nil, fmt.Errorf("%w (got %T)", ErrNotAShape, v)
	}
	var opt ReshapeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	inst := NewObject()
	var slots []string
	for _, name := range decl.Names() {
		fv, _ := decl.Validator(name)
		if fv != nil && IsReshapeSlot(fv) {
			// installed after construction so the capability can capture the
			// finished instance
			slots = append(slots, name)
			continue
		}
		if fv != nil {
			if _, nested := DeclOf(fv); nested {
				child, present, err := reshapeNested(source, name, fv, opt)
				if err != nil {
					return nil, err
				}
				if present {
					inst.put(name, child)
				}
				continue
			}
		}
		val, present := source.Get(name)
		if !present || val == nil {
			continue
		}
		if m, isMethod := val.(Method); isMethod {
			recv := source
			inst.put(name, Func(func(args ...any) any { return m(recv, args...) }))
			continue
		}
		inst.put(name, val)
	}

	for _, name := range slots {
		self := inst
		inst.put(name, ReshapeFunc(func(next Validator, opts ...ReshapeOpt) (*Object, error) {
			derived := ReshapeOpt{Mutable: !self.Frozen()}
			if len(opts) > 0 {
				derived = opts[len(opts)-1]
			}
			return FromShape(self, next, derived)
		}))
	}

	if !opt.Mutable {
		DeepFreeze(inst)
	}
	return inst, nil
}

// MustFromShape is like FromShape but panics on error.
func MustFromShape(source *Object, v Validator, opts ...ReshapeOpt) *Object {
	inst, err := FromShape(source, v, opts...)
	if err != nil {
		panic(err)
	}
	return inst
}

func reshapeNested(source *Object, name string, fv Validator, opt ReshapeOpt) (*Object, bool, error) {
	val, present := source.Get(name)
	if !present || val == nil {
		return nil, false, nil
	}
	child, ok := val.(*Object)
	if !ok {
		return nil, false, Issues{{
			Path:    name,
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    fmt.Sprintf("nested shape field wants an object, got %T", val),
		}}
	}
	sub, err := FromShape(child, fv, opt)
	if err != nil {
		return nil, false, err
	}
	return sub, true, nil
}
