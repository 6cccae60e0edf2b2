package goshape

// Package goshape provides:
//
// - Closed-world structural ("shape") validation for dynamic objects: required
//   fields, declared-field-only candidates, nested sub-shapes
// - Cycle-safe deep-freeze and deep-frozen checks over object graphs
// - FromShape, which projects a richer source object onto exactly the declared
//   fields, binding methods and injecting a self-reshape capability
// - A stable error model via Issues (dotted path, code, message)
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the builder DSL under dsl/, the host check engine under check/, and
//   input decoders under source/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	api := dsl.Shape().
//		Field("field1", dsl.Array().Required()).
//		Field("field2", dsl.String().Required()).
//		Field("reshape", dsl.Reshape()).
//		MustBuild()
//
//	inst, err := goshape.FromShape(source, api)
//	narrower, err := inst.Invoke("reshape", smallerShape)
