package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"sigs.k8s.io/yaml"

	"github.com/MacroPower/schemacheck/pkg/fixture"
)

// Reporter writes fixture results to an [io.Writer].
type Reporter struct {
	w      io.Writer
	styles *styles
	format Format
}

type styles struct {
	pass   lipgloss.Style
	fail   lipgloss.Style
	detail lipgloss.Style
}

// NewReporter creates a [Reporter] writing to w.
func NewReporter(w io.Writer, opts Options) (*Reporter, error) {
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	mode := opts.Color
	if mode == "" {
		mode = ColorAuto
	}

	mode, err = ParseColorMode(string(mode))
	if err != nil {
		return nil, err
	}

	r := &Reporter{w: w, format: format}

	if format == FormatText && colorEnabled(w, mode) {
		re := lipgloss.NewRenderer(w)
		if re.ColorProfile() == termenv.Ascii {
			re.SetColorProfile(termenv.ANSI)
		}

		r.styles = &styles{
			pass:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
			fail:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
			detail: re.NewStyle().Faint(true),
		}
	}

	return r, nil
}

// Write renders results and returns the number of fixtures that did not
// match their expectation.
func (r *Reporter) Write(results []fixture.Result) (int, error) {
	failures := fixture.Failures(results)

	var (
		out []byte
		err error
	)

	switch r.format {
	case FormatJSON:
		out, err = json.MarshalIndent(newDocument(results, failures), "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(newDocument(results, failures))
	default:
		out = r.text(results, failures)
	}

	if err != nil {
		return failures, fmt.Errorf("encode %s report: %w", r.format, err)
	}

	_, err = r.w.Write(out)
	if err != nil {
		return failures, fmt.Errorf("write report: %w", err)
	}

	return failures, nil
}

func (r *Reporter) text(results []fixture.Result, failures int) []byte {
	buf := &bytes.Buffer{}

	for _, res := range results {
		if res.Passed() {
			fmt.Fprintf(buf, "%s %s: %s\n", r.tag(true), res.Kind, res.Path)

			continue
		}

		switch res.Status {
		case fixture.StatusUnexpectedlyValid, fixture.StatusUnreadable:
			fmt.Fprintf(buf, "%s %s (%s): %s\n", r.tag(false), res.Kind, res.Status, res.Path)
		default:
			fmt.Fprintf(buf, "%s %s: %s\n", r.tag(false), res.Kind, res.Path)
		}

		if res.Err != nil {
			fmt.Fprintf(buf, "  %s\n", r.detail("-> "+res.Err.Error()))
		}

		for _, e := range res.Errors {
			fmt.Fprintf(buf, "  %s\n", r.detail("-> "+e.String()))
		}
	}

	buf.WriteString("\n")

	if failures > 0 {
		fmt.Fprintf(buf, "Validation completed with %d failure(s).\n", failures)
	} else {
		buf.WriteString("All validations passed.\n")
	}

	return buf.Bytes()
}

func (r *Reporter) tag(passed bool) string {
	switch {
	case r.styles == nil && passed:
		return "PASS"
	case r.styles == nil:
		return "FAIL"
	case passed:
		return r.styles.pass.Render("PASS")
	default:
		return r.styles.fail.Render("FAIL")
	}
}

func (r *Reporter) detail(s string) string {
	if r.styles == nil {
		return s
	}

	return r.styles.detail.Render(s)
}

// ExitCode maps a failure count to a process exit status.
func ExitCode(failures int) int {
	if failures > 0 {
		return 1
	}

	return 0
}

type document struct {
	Fixtures []fixtureDocument `json:"fixtures"`
	Failures int               `json:"failures"`
	Passed   bool              `json:"passed"`
}

type fixtureDocument struct {
	fixture.Result

	Error string `json:"error,omitempty"`
}

func newDocument(results []fixture.Result, failures int) document {
	doc := document{
		Fixtures: make([]fixtureDocument, 0, len(results)),
		Failures: failures,
		Passed:   failures == 0,
	}

	for _, res := range results {
		fd := fixtureDocument{Result: res}
		if res.Err != nil {
			fd.Error = res.Err.Error()
		}

		doc.Fixtures = append(doc.Fixtures, fd)
	}

	return doc
}
