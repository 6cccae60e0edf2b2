// Package dsl is the user-facing surface for declaring shapes.
//
// A shape is a closed set of fields: validation rejects any candidate field
// that is not declared. Field validators are primitives (String, Number,
// Array, ...), nested shapes, or the Reshape slot marker.
//
//	api := dsl.Shape().
//		Field("field1", dsl.Array().Required()).
//		Field("field2", dsl.String().Required()).
//		MustBuild()
//
// Modifiers compose: api.Required(), api.Frozen(), api.Frozen().Required().
package dsl
