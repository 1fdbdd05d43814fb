package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MacroPower/schemacheck/pkg/jsonschema"
	"github.com/MacroPower/schemacheck/pkg/tracing"
)

// Pattern matches fixture file names.
const Pattern = "*.json"

var (
	// ErrListFixtures indicates a fixture directory exists but could not be
	// read.
	ErrListFixtures = errors.New("list fixtures")

	_ Validator = (*jsonschema.Validator)(nil)
)

// Validator reports the constraint violations of a JSON document.
type Validator interface {
	ErrorsFor(doc any) []jsonschema.ErrorRecord
}

// List returns the paths of the regular files in dir whose names match
// [Pattern], sorted by file name. Subdirectories are not searched. A dir
// that does not exist yields no paths and no error.
func List(dir string) ([]string, error) {
	// Entries come back sorted by file name.
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("fixture directory does not exist", slog.String("dir", dir))

		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFixtures, err)
	}

	paths := []string{}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		ok, err := filepath.Match(Pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrListFixtures, err)
		}

		if ok {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	return paths, nil
}

// Walk checks every fixture in cfg.ValidDir and then every fixture in
// cfg.InvalidDir against v, returning one [Result] per fixture in that
// order. A fixture that cannot be read or parsed becomes a
// [StatusUnreadable] result and the walk continues. Only a fixture
// directory that exists but cannot be listed stops the walk.
func Walk(cfg Config, v Validator) ([]Result, error) {
	results := []Result{}
	tracer := tracing.NewLoggingTracer(slog.Default())

	for _, set := range []struct {
		dir  string
		kind Kind
	}{
		{dir: cfg.ValidDir, kind: KindValid},
		{dir: cfg.InvalidDir, kind: KindInvalid},
	} {
		paths, err := List(set.dir)
		if err != nil {
			return nil, fmt.Errorf("%s fixtures: %w", set.kind, err)
		}

		slog.Debug("found fixtures",
			slog.String("kind", string(set.kind)),
			slog.String("dir", set.dir),
			slog.Int("count", len(paths)),
		)

		for _, path := range paths {
			span := tracer.StartSpan("check_fixture")
			res := checkOne(v, set.kind, path)

			span.SetBaggageItem("path", res.Path)
			span.SetBaggageItem("status", string(res.Status))
			span.Finish()

			results = append(results, res)
		}
	}

	return results, nil
}

func checkOne(v Validator, k Kind, path string) Result {
	doc, err := jsonschema.LoadFile(path)
	if err != nil {
		slog.Warn("unreadable fixture",
			slog.String("path", path),
			slog.Any("err", err),
		)

		return Result{Path: path, Kind: k, Status: StatusUnreadable, Err: err}
	}

	errs := v.ErrorsFor(doc)
	status := Classify(k, errs)

	if k == KindInvalid && status == StatusPass {
		for _, e := range errs {
			slog.Debug("rejected as expected",
				slog.String("path", path),
				slog.String("error", e.String()),
			)
		}
	}

	return Result{Path: path, Kind: k, Status: status, Errors: errs}
}

// Check compiles the schema at cfg.SchemaPath and walks the fixtures with
// it. Schema errors are returned unchanged and no fixtures are checked.
func Check(cfg Config, opts ...jsonschema.Option) ([]Result, error) {
	v, err := jsonschema.NewValidator(cfg.SchemaPath, opts...)
	if err != nil {
		return nil, err
	}

	return Walk(cfg, v)
}
