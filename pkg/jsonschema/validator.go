package jsonschema

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	jsonschemav6 "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Option configures a [Validator].
type Option func(*validatorOptions)

type validatorOptions struct {
	assertFormat bool
}

// WithFormatAssertions makes the "format" keyword an assertion. By default
// "format" is an annotation only, as Draft 2020-12 specifies.
func WithFormatAssertions() Option {
	return func(o *validatorOptions) {
		o.assertFormat = true
	}
}

// Validator checks JSON documents against a compiled schema.
type Validator struct {
	schema  *jsonschemav6.Schema
	printer *message.Printer
	url     string
}

// NewValidator loads the schema at schemaPath and compiles it, using Draft
// 2020-12 unless the schema declares otherwise via "$schema". Relative
// references in the schema are resolved against schemaPath's directory.
//
// A schema that cannot be read or parsed returns an error wrapping
// [ErrParse]. A schema that cannot be compiled, including unresolvable
// references, returns an error wrapping [ErrCompile].
func NewValidator(schemaPath string, opts ...Option) (*Validator, error) {
	o := &validatorOptions{}
	for _, opt := range opts {
		opt(o)
	}

	doc, err := LoadFile(schemaPath)
	if err != nil {
		return nil, err
	}

	schemaURL, err := BaseURL(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, schemaPath, err)
	}

	c := jsonschemav6.NewCompiler()
	c.DefaultDraft(jsonschemav6.Draft2020)

	if o.assertFormat {
		c.AssertFormat()
	}

	err = c.AddResource(schemaURL, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, schemaPath, err)
	}

	sch, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, schemaPath, err)
	}

	slog.Debug("compiled schema",
		slog.String("url", schemaURL),
		slog.Bool("assert_format", o.assertFormat),
	)

	return &Validator{
		schema:  sch,
		printer: message.NewPrinter(language.English),
		url:     schemaURL,
	}, nil
}

// URL returns the URL the schema was compiled from.
func (v *Validator) URL() string {
	return v.url
}

// ErrorsFor returns every constraint violation found in doc, ordered by
// [SortRecords]. An empty result means doc conforms to the schema.
//
// doc should be a value produced by [LoadFile].
func (v *Validator) ErrorsFor(doc any) []ErrorRecord {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschemav6.ValidationError
	if !errors.As(err, &ve) {
		// Not a constraint violation, e.g. doc holds a non-JSON Go type.
		return []ErrorRecord{{Message: err.Error(), Path: []string{}}}
	}

	records := v.collect(ve, nil)
	SortRecords(records)

	return records
}

// collect flattens the error tree into its leaves. Inner nodes only group
// the violations beneath them.
func (v *Validator) collect(ve *jsonschemav6.ValidationError, records []ErrorRecord) []ErrorRecord {
	if len(ve.Causes) == 0 {
		return append(records, ErrorRecord{
			Message:     ve.ErrorKind.LocalizedString(v.printer),
			Path:        append([]string{}, ve.InstanceLocation...),
			KeywordPath: slices.Clone(ve.ErrorKind.KeywordPath()),
		})
	}

	for _, cause := range ve.Causes {
		records = v.collect(cause, records)
	}

	return records
}
