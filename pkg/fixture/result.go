package fixture

import (
	"github.com/MacroPower/schemacheck/pkg/jsonschema"
)

// Kind is the expectation attached to a fixture by its directory.
type Kind string

const (
	// KindValid fixtures must conform to the schema.
	KindValid Kind = "valid"
	// KindInvalid fixtures must violate the schema.
	KindInvalid Kind = "invalid"
)

// Status is the classification of a single fixture.
type Status string

const (
	// StatusPass means the fixture behaved as its [Kind] requires.
	StatusPass Status = "pass"
	// StatusFail means a [KindValid] fixture produced errors.
	StatusFail Status = "fail"
	// StatusUnexpectedlyValid means a [KindInvalid] fixture produced no
	// errors.
	StatusUnexpectedlyValid Status = "unexpectedly valid"
	// StatusUnreadable means the fixture could not be read or parsed.
	StatusUnreadable Status = "unreadable"
)

// Result is the outcome of checking one fixture.
type Result struct {
	// Err is set when Status is [StatusUnreadable].
	Err    error                    `json:"-"`
	Path   string                   `json:"path"`
	Kind   Kind                     `json:"kind"`
	Status Status                   `json:"status"`
	Errors []jsonschema.ErrorRecord `json:"errors,omitempty"`
}

// Passed reports whether the fixture matched its expectation.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// Failures returns the number of results that did not match their
// expectation.
func Failures(results []Result) int {
	n := 0

	for _, r := range results {
		if !r.Passed() {
			n++
		}
	}

	return n
}

// Classify returns the [Status] of a readable fixture of kind k whose
// validation produced errs. A fixture of unknown kind has no expectation it
// can meet and is classified [StatusFail].
func Classify(k Kind, errs []jsonschema.ErrorRecord) Status {
	switch k {
	case KindValid:
		if len(errs) == 0 {
			return StatusPass
		}

		return StatusFail
	case KindInvalid:
		if len(errs) == 0 {
			return StatusUnexpectedlyValid
		}

		return StatusPass
	}

	return StatusFail
}
