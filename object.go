package goshape

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrFrozen is returned by mutating operations on a frozen value.
var ErrFrozen = errors.New("goshape: value is frozen")

// Method is a function-valued field that receives the object it is invoked on
// as its receiver.
type Method func(recv *Object, args ...any) any

// Func is a self-contained function-valued field, already bound to whatever
// receiver it needs.
type Func func(args ...any) any

// Getter is a computed property. Reading the field calls it; a panicking
// Getter makes the field behave as if it did not exist.
type Getter func() any

// Object is an ordered, string-keyed dynamic record with an immutability bit.
// Field order is insertion order and is preserved by every operation that
// enumerates fields.
type Object struct {
	keys   []string
	fields map[string]any
	frozen bool
}

// NewObject returns an empty, mutable Object.
func NewObject() *Object {
	return &Object{fields: map[string]any{}}
}

// Set installs a field value, appending the key on first assignment. It fails
// with ErrFrozen once the object has been frozen.
func (o *Object) Set(name string, v any) error {
	if o.frozen {
		return ErrFrozen
	}
	if _, exists := o.fields[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = v
	return nil
}

// MustSet is like Set but panics on ErrFrozen. It returns the object so that
// literals can be built by chaining.
func (o *Object) MustSet(name string, v any) *Object {
	if err := o.Set(name, v); err != nil {
		panic(err)
	}
	return o
}

// SetComputed installs a computed property backed by the Getter.
func (o *Object) SetComputed(name string, g Getter) error {
	return o.Set(name, g)
}

// Get reads a field. Computed properties are evaluated; if the Getter panics
// the field is reported as absent rather than propagating the panic.
func (o *Object) Get(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	return o.readSafe(name)
}

// Has reports whether the field enumerates, without evaluating computed
// properties.
func (o *Object) Has(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.fields[name]
	return ok
}

// Keys returns the field names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Delete removes a field. It fails with ErrFrozen once the object has been
// frozen; deleting an absent field is a no-op.
func (o *Object) Delete(name string) error {
	if o.frozen {
		return ErrFrozen
	}
	if _, exists := o.fields[name]; !exists {
		return nil
	}
	delete(o.fields, name)
	for i, k := range o.keys {
		if k == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Frozen reports whether the object itself has been frozen. Use IsDeeplyFrozen
// for the transitive check.
func (o *Object) Frozen() bool { return o.frozen }

// Invoke calls a function-valued field. Method fields receive the object as
// their receiver; Func fields are called as-is; ReshapeFunc fields expect a
// Validator first argument and an optional ReshapeOpt.
func (o *Object) Invoke(name string, args ...any) (any, error) {
	v, ok := o.Get(name)
	if !ok {
		return nil, fmt.Errorf("goshape: object has no field %q", name)
	}
	switch f := v.(type) {
	case Method:
		return f(o, args...), nil
	case Func:
		return f(args...), nil
	case ReshapeFunc:
		if len(args) == 0 {
			return nil, fmt.Errorf("goshape: reshape field %q needs a shape validator argument", name)
		}
		next, ok := args[0].(Validator)
		if !ok {
			return nil, fmt.Errorf("goshape: reshape field %q: first argument must be a Validator, got %T", name, args[0])
		}
		var opts []ReshapeOpt
		for _, a := range args[1:] {
			ro, ok := a.(ReshapeOpt)
			if !ok {
				return nil, fmt.Errorf("goshape: reshape field %q: unexpected argument %T", name, a)
			}
			opts = append(opts, ro)
		}
		return f(next, opts...)
	}
	return nil, fmt.Errorf("goshape: field %q is not callable", name)
}

// readSafe evaluates a field, converting a panicking Getter into "absent".
func (o *Object) readSafe(name string) (v any, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()
	raw, exists := o.fields[name]
	if !exists {
		return nil, false
	}
	if g, isGetter := raw.(Getter); isGetter {
		return g(), true
	}
	return raw, true
}

// put installs a field during construction, before the object can be frozen.
func (o *Object) put(name string, v any) {
	if _, exists := o.fields[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = v
}

func (o *Object) freeze() { o.frozen = true }

func (o *Object) eachChild(fn func(name string, v any)) {
	for _, k := range o.keys {
		if v, ok := o.readSafe(k); ok {
			fn(k, v)
		}
	}
}

// List is a dynamic array participating in freeze traversal.
type List struct {
	elems  []any
	frozen bool
}

// NewList returns a mutable List holding the given elements.
func NewList(elems ...any) *List {
	return &List{elems: elems}
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.elems) }

// At returns the element at index i.
func (l *List) At(i int) any { return l.elems[i] }

// Append adds an element. It fails with ErrFrozen once the list is frozen.
func (l *List) Append(v any) error {
	if l.frozen {
		return ErrFrozen
	}
	l.elems = append(l.elems, v)
	return nil
}

// SetAt replaces the element at index i. It fails with ErrFrozen once the
// list is frozen.
func (l *List) SetAt(i int, v any) error {
	if l.frozen {
		return ErrFrozen
	}
	l.elems[i] = v
	return nil
}

// Frozen reports whether the list itself has been frozen.
func (l *List) Frozen() bool { return l.frozen }

func (l *List) freeze() { l.frozen = true }

func (l *List) eachChild(fn func(name string, v any)) {
	for i, v := range l.elems {
		fn(strconv.Itoa(i), v)
	}
}
