package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/schemacheck/internal/cli"
	"github.com/MacroPower/schemacheck/pkg/jsonschema"
	"github.com/MacroPower/schemacheck/pkg/report"
)

var testDataDir string

func init() {
	//nolint:dogsled
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

func circuitArgs(extra ...string) []string {
	base := filepath.Join(testDataDir, "circuit")

	return append([]string{
		"--schema", filepath.Join(base, "schema.json"),
		"--valid", filepath.Join(base, "examples", "valid"),
		"--invalid", filepath.Join(base, "examples", "invalid"),
	}, extra...)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_check", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCheckCmd(t *testing.T) {
	stdout, stderr, err := execute(t, circuitArgs()...)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	base := filepath.Join(testDataDir, "circuit", "examples")
	want := strings.Join([]string{
		"PASS valid: " + filepath.Join(base, "valid", "rc_filter.json"),
		"PASS valid: " + filepath.Join(base, "valid", "single_source.json"),
		"PASS invalid: " + filepath.Join(base, "invalid", "bad_kind.json"),
		"PASS invalid: " + filepath.Join(base, "invalid", "missing_nets.json"),
		"PASS invalid: " + filepath.Join(base, "invalid", "short_net.json"),
		"",
		"All validations passed.",
		"",
	}, "\n")
	assert.Equal(t, want, stdout)
}

func TestCheckCmdDeterministic(t *testing.T) {
	first, _, err := execute(t, circuitArgs("--output", "json")...)
	require.NoError(t, err)

	second, _, err := execute(t, circuitArgs("--output", "json")...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, `"passed": true`)
}

func TestCheckCmdFailures(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"schema.json":    `{"type":"object","required":["id"],"properties":{"id":{"type":"integer"}}}`,
		"valid/a.json":   `{"id": 1}`,
		"valid/b.json":   `{"id": 1,}`,
		"invalid/a.json": `{"id": "x"}`,
		"invalid/b.json": `{"id": 1}`,
	}

	for name, data := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	}

	stdout, _, err := execute(t,
		"--schema", filepath.Join(root, "schema.json"),
		"--valid", filepath.Join(root, "valid"),
		"--invalid", filepath.Join(root, "invalid"),
		"--log_level", "error",
	)
	require.ErrorIs(t, err, cli.ErrFixturesFailed)

	var ffe *cli.FixturesFailedError
	require.ErrorAs(t, err, &ffe)
	assert.Equal(t, 2, ffe.Failures)
	assert.Equal(t, 4, ffe.Total)
	assert.Equal(t, 1, cli.ExitCode(err))

	assert.Contains(t, stdout, "PASS valid: "+filepath.Join(root, "valid", "a.json")+"\n")
	assert.Contains(t, stdout, "FAIL valid (unreadable): "+filepath.Join(root, "valid", "b.json")+"\n")
	assert.Contains(t, stdout, "PASS invalid: "+filepath.Join(root, "invalid", "a.json")+"\n")
	assert.Contains(t, stdout, "FAIL invalid (unexpectedly valid): "+filepath.Join(root, "invalid", "b.json")+"\n")
	assert.True(t, strings.HasSuffix(stdout, "\nValidation completed with 2 failure(s).\n"), stdout)
}

func TestCheckCmdEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	schema := filepath.Join(root, "schema.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{"type": "object"}`), 0o600))

	stdout, _, err := execute(t,
		"--schema", schema,
		"--valid", filepath.Join(root, "valid"),
		"--invalid", filepath.Join(root, "invalid"),
	)
	require.NoError(t, err)
	assert.Equal(t, "\nAll validations passed.\n", stdout)
}

func TestCheckCmdSchemaErrors(t *testing.T) {
	root := t.TempDir()
	malformed := filepath.Join(root, "schema.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"type": "object",}`), 0o600))

	tcs := map[string]struct {
		wantErr error
		schema  string
	}{
		"missing schema": {
			schema:  filepath.Join(root, "missing.json"),
			wantErr: jsonschema.ErrParse,
		},
		"malformed schema": {
			schema:  malformed,
			wantErr: jsonschema.ErrParse,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := execute(t, "--schema", tc.schema, "--valid", root, "--invalid", root)
			require.ErrorIs(t, err, tc.wantErr)
			assert.NotErrorIs(t, err, cli.ErrFixturesFailed)
			assert.Equal(t, 1, cli.ExitCode(err))
			assert.Contains(t, err.Error(), tc.schema)
			assert.Empty(t, stdout)
		})
	}
}

func TestRootCmdArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr error
		args    []string
	}{
		"default config": {
			args: []string{"--log_level", "warn", "--log_format", "text"},
		},
		"json logs": {
			args: []string{"--log_level", "info", "--log_format", "json"},
		},
		"yaml report": {
			args: []string{"--output", "yaml"},
		},
		"format assertions": {
			args: []string{"--assert_format"},
		},
		"always color": {
			args: []string{"--color", "always"},
		},
		"invalid log level": {
			args:    []string{"--log_level", "invalid"},
			wantErr: cli.ErrLogHandlerFailed,
		},
		"invalid log format": {
			args:    []string{"--log_format", "invalid"},
			wantErr: cli.ErrLogHandlerFailed,
		},
		"invalid output": {
			args:    []string{"--output", "xml"},
			wantErr: cli.ErrInvalidArgument,
		},
		"invalid color": {
			args:    []string{"--color", "sometimes"},
			wantErr: cli.ErrInvalidArgument,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, circuitArgs(tc.args...)...)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tcs := map[string]struct {
		err  error
		want int
	}{
		"success": {
			want: 0,
		},
		"fixture failures": {
			err:  &cli.FixturesFailedError{Failures: 3, Total: 5},
			want: 1,
		},
		"wrapped fixture failures": {
			err:  fmt.Errorf("run: %w", &cli.FixturesFailedError{Failures: 1, Total: 1}),
			want: 1,
		},
		"no failed fixtures": {
			err:  &cli.FixturesFailedError{Total: 5},
			want: 0,
		},
		"fatal": {
			err:  fmt.Errorf("check fixtures: %w", jsonschema.ErrParse),
			want: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, cli.ExitCode(tc.err))
		})
	}
}

func TestExitCodeFromCmd(t *testing.T) {
	_, _, err := execute(t, circuitArgs()...)
	require.NoError(t, err)
	assert.Equal(t, 0, cli.ExitCode(err))

	base := filepath.Join(testDataDir, "circuit", "examples")
	stdout, _, err := execute(t,
		"--schema", filepath.Join(testDataDir, "circuit", "schema.json"),
		"--valid", filepath.Join(base, "invalid"),
		"--invalid", filepath.Join(base, "valid"),
	)
	require.ErrorIs(t, err, cli.ErrFixturesFailed)
	assert.Equal(t, 1, cli.ExitCode(err))
	assert.Contains(t, stdout, "Validation completed with 5 failure(s).")
	assert.Contains(t, err.Error(), "5 of 5")
}

func TestRootCmdHelpListsFormats(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)

	for _, f := range report.Formats {
		assert.Contains(t, stdout, string(f))
	}

	assert.Contains(t, stdout, "Report format (text, json, yaml)")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "unexpected")
	require.Error(t, err)
}
