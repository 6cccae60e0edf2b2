package dsl

import (
	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/check"
)

// slotValidator marks a field as a self-reshape slot. It is recognized by
// identity through the SlotMarker discriminant; as a validator it only
// requires the installed capability to be function-valued.
type slotValidator struct{}

var _ goshape.SlotMarker = slotValidator{}

func (slotValidator) ReshapeSlot() {}

func (slotValidator) Check(props *goshape.Object, fieldName, ownerName string) error {
	if props == nil {
		// invoked directly outside the check protocol; deliberately a no-op
		return nil
	}
	return check.RequiredFunc.Check(props, fieldName, ownerName)
}

// Reshape returns the reshape-slot placeholder validator. Declare it on a
// field to have FromShape install a self-reshape capability there.
func Reshape() goshape.Validator { return slotValidator{} }
