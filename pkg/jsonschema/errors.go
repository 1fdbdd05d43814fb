package jsonschema

import "errors"

var (
	// ErrParse indicates a JSON document could not be read or parsed.
	ErrParse = errors.New("parse JSON")

	// ErrInvalidUTF8 indicates a JSON document is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrCompile indicates a schema could not be compiled.
	ErrCompile = errors.New("compile schema")
)
