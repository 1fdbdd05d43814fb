package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/schemacheck/pkg/fixture"
	"github.com/MacroPower/schemacheck/pkg/jsonschema"
	"github.com/MacroPower/schemacheck/pkg/log"
	"github.com/MacroPower/schemacheck/pkg/report"
	"github.com/MacroPower/schemacheck/pkg/version"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrLogHandlerFailed = errors.New("log handler failed")

	// ErrFixturesFailed is returned when at least one fixture did not match
	// its expectation. The report has already been written when it is
	// returned.
	ErrFixturesFailed = errors.New("fixtures failed")
)

const rootExample = `  # Check the default schema and fixture directories
  schemacheck

  # Check a specific schema
  schemacheck --schema schemas/circuit/v1.0.0/schema.json \
    --valid schemas/circuit/v1.0.0/examples/valid \
    --invalid schemas/circuit/v1.0.0/examples/invalid

  # Emit a machine-readable report
  schemacheck --output json
`

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	defaults := fixture.DefaultConfig()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		Example:       rootExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
		RunE:          runCheck,
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.Flags().String("schema", defaults.SchemaPath, "Path to the JSON Schema document")
	cmd.Flags().String("valid", defaults.ValidDir, "Directory of fixtures that must validate")
	cmd.Flags().String("invalid", defaults.InvalidDir, "Directory of fixtures that must fail validation")
	formats := make([]string, 0, len(report.Formats))
	for _, f := range report.Formats {
		formats = append(formats, string(f))
	}

	cmd.Flags().StringP("output", "o", string(report.FormatText),
		fmt.Sprintf("Report format (%s)", strings.Join(formats, ", ")))
	cmd.Flags().String("color", string(report.ColorAuto), "Colorize text output (auto, always, never)")
	cmd.Flags().Bool("assert_format", false, "Treat the \"format\" keyword as an assertion")

	if err := cmd.MarkFlagFilename("schema", "json"); err != nil {
		panic(err)
	}

	if err := cmd.MarkFlagDirname("valid"); err != nil {
		panic(err)
	}

	if err := cmd.MarkFlagDirname("invalid"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go", slog.String("version", version.String()))

		return nil
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func runCheck(cc *cobra.Command, _ []string) error {
	flags := cc.Flags()

	var (
		merr error
		cfg  fixture.Config
		err  error
	)

	cfg.SchemaPath, err = flags.GetString("schema")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	cfg.ValidDir, err = flags.GetString("valid")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	cfg.InvalidDir, err = flags.GetString("invalid")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	output, err := flags.GetString("output")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	color, err := flags.GetString("color")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	assertFormat, err := flags.GetBool("assert_format")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	r, err := report.NewReporter(cc.OutOrStdout(), report.Options{
		Format: report.Format(output),
		Color:  report.ColorMode(color),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var opts []jsonschema.Option
	if assertFormat {
		opts = append(opts, jsonschema.WithFormatAssertions())
	}

	slog.Debug("checking fixtures",
		slog.String("schema", cfg.SchemaPath),
		slog.String("valid", cfg.ValidDir),
		slog.String("invalid", cfg.InvalidDir),
	)

	results, err := fixture.Check(cfg, opts...)
	if err != nil {
		return fmt.Errorf("check fixtures: %w", err)
	}

	failures, err := r.Write(results)
	if err != nil {
		return err
	}

	if failures > 0 {
		return &FixturesFailedError{Failures: failures, Total: len(results)}
	}

	return nil
}

// FixturesFailedError is returned by the root command when fixtures did not
// match their expectation. It matches [ErrFixturesFailed].
type FixturesFailedError struct {
	Failures int
	Total    int
}

func (e *FixturesFailedError) Error() string {
	return fmt.Sprintf("%s: %d of %d", ErrFixturesFailed, e.Failures, e.Total)
}

func (e *FixturesFailedError) Unwrap() error {
	return ErrFixturesFailed
}

// ExitCode maps an error returned by the root command to a process exit
// status. Fixture failures map through [report.ExitCode]; any other error
// is fatal and maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return report.ExitCode(0)
	}

	var ffe *FixturesFailedError
	if errors.As(err, &ffe) {
		return report.ExitCode(ffe.Failures)
	}

	return 1
}
