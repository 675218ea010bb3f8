package valjson

// Package valjson validates JSON-like values against JSON Schema
// (draft-04 style) documents.
//
// - A stable error model via Issues (JSON Pointer, code, message)
// - Schema loading from JSON and YAML into a read-only node tree
// - A recursive validation engine with full array semantics
//   (list/tuple items, additionalItems, uniqueItems)
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations
//   under internal/.
// - Place the schema model under schema/, the engine under validate/, and
//   the CLI under cmd/valjson.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := validate.CompileJSON(schemaBytes)
//	doc, err := valjson.DecodeJSON(docBytes)
//	if iss := v.Validate(doc); len(iss) > 0 { ... }
