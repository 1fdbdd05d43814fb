package jsonschema

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrorRecord is a single constraint violation found in a JSON document.
type ErrorRecord struct {
	// Message is a human-readable description of the violation.
	Message string `json:"message"`
	// Path is the location of the violation within the document, as a
	// sequence of object keys and array indices.
	Path []string `json:"path"`
	// KeywordPath is the location of the failing keyword within the schema.
	KeywordPath []string `json:"keywordPath,omitempty"`
}

// Pointer returns [ErrorRecord.Path] as a JSON Pointer (RFC 6901). The
// document root is the empty string.
func (r ErrorRecord) Pointer() string {
	var sb strings.Builder
	for _, tok := range r.Path {
		sb.WriteByte('/')
		sb.WriteString(escapePointerToken(tok))
	}

	return sb.String()
}

func (r ErrorRecord) String() string {
	return fmt.Sprintf("at '%s': %s", r.Pointer(), r.Message)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointerToken(tok string) string {
	return pointerEscaper.Replace(tok)
}

// SortRecords sorts records by [ErrorRecord.Path], then by message.
//
// Paths are compared element by element. Two elements that are both array
// indices compare numerically, anything else compares as strings. A path
// sorts before any path it is a prefix of.
func SortRecords(records []ErrorRecord) {
	slices.SortStableFunc(records, CompareRecords)
}

// CompareRecords orders records as described by [SortRecords].
func CompareRecords(a, b ErrorRecord) int {
	if c := ComparePaths(a.Path, b.Path); c != 0 {
		return c
	}

	return strings.Compare(a.Message, b.Message)
}

// ComparePaths compares two instance paths as described by [SortRecords].
func ComparePaths(a, b []string) int {
	for i := range min(len(a), len(b)) {
		if c := compareTokens(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

func compareTokens(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)

	if aErr == nil && bErr == nil {
		return cmp.Compare(ai, bi)
	}

	return strings.Compare(a, b)
}
