// Package jsonschema loads JSON Schema documents and validates JSON documents
// against them.
//
// Constraint checking and reference resolution are delegated to
// [github.com/santhosh-tekuri/jsonschema/v6]. This package adds file loading
// with path-aware errors, resolution of relative references against the
// schema file's directory, and a flat, deterministically ordered list of
// [ErrorRecord] values for each validated document.
package jsonschema
