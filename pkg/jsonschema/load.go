package jsonschema

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	jsonschemav6 "github.com/santhosh-tekuri/jsonschema/v6"
)

// LoadFile reads the file at path and decodes it as a single UTF-8 encoded
// JSON value. Numbers are decoded as [encoding/json.Number] so that no
// precision is lost before validation. Any failure wraps [ErrParse] and names
// the path.
func LoadFile(path string) (any, error) {
	//nolint:gosec // G304 reading user-provided paths is the point.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, ErrInvalidUTF8)
	}

	doc, err := jsonschemav6.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	return doc, nil
}

// BaseURL returns the absolute file URL for path. Relative references in a
// schema loaded from path resolve against the directory part of this URL.
func BaseURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows volume names.
		p = "/" + p
	}

	u := url.URL{Scheme: "file", Path: p}

	return u.String(), nil
}
