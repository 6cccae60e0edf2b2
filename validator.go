package goshape

// Validator is the host property-check protocol: a check over the field named
// fieldName inside the candidate holder props, owned by ownerName. A nil
// return means the check passed; validation failures come back as Issues
// values, never as panics.
type Validator interface {
	Check(props *Object, fieldName, ownerName string) error
}

// ValidatorFunc adapts a plain function to the Validator protocol.
type ValidatorFunc func(props *Object, fieldName, ownerName string) error

func (f ValidatorFunc) Check(props *Object, fieldName, ownerName string) error {
	return f(props, fieldName, ownerName)
}

// ShapeCarrier is implemented by every validator constructed from a shape
// declaration, including its Required/Frozen compositions, so that FromShape
// can recover the declaration from a plain validator value.
type ShapeCarrier interface {
	Validator
	ShapeDecl() *Decl
}

// SlotMarker is implemented by the reshape-slot placeholder validator. It is
// recognized structurally; its Check is never meaningful validation logic.
type SlotMarker interface {
	Validator
	ReshapeSlot()
}

// DeclOf recovers the shape declaration carried by v, when there is one.
func DeclOf(v Validator) (*Decl, bool) {
	if sc, ok := v.(ShapeCarrier); ok {
		if d := sc.ShapeDecl(); d != nil {
			return d, true
		}
	}
	return nil, false
}

// IsReshapeSlot reports whether v is the reshape-slot placeholder.
func IsReshapeSlot(v Validator) bool {
	_, ok := v.(SlotMarker)
	return ok
}
