//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/radiusfit/internal/format"
	"github.com/agbru/radiusfit/internal/pipeline"
	"github.com/agbru/radiusfit/internal/ui"
)

// ReportPresenter writes the sections of a fit report.
type ReportPresenter interface {
	// PresentHeader describes the run configuration before the results.
	PresentHeader(req pipeline.Request, out io.Writer)
	// PresentOutcome writes the coefficients and error figures.
	PresentOutcome(outcome pipeline.Outcome, out io.Writer)
	// PresentWarning reports an advisory problem, such as an ill-conditioned
	// design matrix.
	PresentWarning(err error, out io.Writer)
}

// CLIReportPresenter writes the human-readable report.
type CLIReportPresenter struct {
	// Verbose adds the condition number and per-stage timings.
	Verbose bool
}

// QuietReportPresenter writes the two-line machine-friendly report.
type QuietReportPresenter struct{}

// Verify interface compliance.
var (
	_ ReportPresenter = CLIReportPresenter{}
	_ ReportPresenter = QuietReportPresenter{}
)

// NewReportPresenter returns the presenter matching the output mode.
func NewReportPresenter(quiet, verbose bool) ReportPresenter {
	if quiet {
		return QuietReportPresenter{}
	}
	return CLIReportPresenter{Verbose: verbose}
}

// PresentHeader prints the ellipsoid and fit configuration.
func (CLIReportPresenter) PresentHeader(req pipeline.Request, out io.Writer) {
	e := req.Ellipsoid
	fmt.Fprintln(out, ui.Heading("--- Ellipsoid radius fit ---"))
	fmt.Fprintf(out, "Equatorial radius: %s\n", FormatMeters(e.Equatorial))
	fmt.Fprintf(out, "Polar radius:      %s\n", FormatMeters(e.Polar))
	fmt.Fprintf(out, "Flattening:        %s\n", format.FormatInverseFlattening(e.Flattening()))
	fmt.Fprintf(out, "Samples: %d, degree: %d\n\n", req.Samples, req.Degree)
}

// PresentOutcome prints the coefficients, highest degree first, and the
// error figures in meters.
func (p CLIReportPresenter) PresentOutcome(o pipeline.Outcome, out io.Writer) {
	fmt.Fprintln(out, CoefficientsHeading)
	for _, line := range FormatCoefficients(o.Fit.Poly) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Max error: %s\n", FormatMeters(o.Report.MaxAbs))
	fmt.Fprintf(out, "RMS error: %s\n", FormatMeters(o.Report.RMS))
	fmt.Fprintf(out, "Worst residual at latitude %s\n", format.FormatLatitude(o.Report.WorstPhi))

	if !p.Verbose {
		return
	}
	fmt.Fprintf(out, "\nDesign matrix condition number: %.4g\n", o.Fit.Condition)
	fmt.Fprintln(out, ui.Heading("Stage timings:"))
	for _, s := range o.Stages {
		fmt.Fprintf(out, "  %s%-9s%s %s\n", ui.ColorBold(), s.Stage, ui.ColorReset(), format.FormatExecutionDuration(s.Duration))
	}
}

// PresentWarning prints an advisory warning.
func (CLIReportPresenter) PresentWarning(err error, out io.Writer) {
	fmt.Fprintf(out, "%s %v\n", ui.WarningLabel("Warning:"), err)
}

// PresentHeader prints nothing in quiet mode.
func (QuietReportPresenter) PresentHeader(pipeline.Request, io.Writer) {}

// PresentOutcome prints the quiet two-line result.
func (QuietReportPresenter) PresentOutcome(o pipeline.Outcome, out io.Writer) {
	fmt.Fprintln(out, FormatQuietResult(o.Fit.Poly, o.Report))
}

// PresentWarning prints the bare warning text.
func (QuietReportPresenter) PresentWarning(err error, out io.Writer) {
	fmt.Fprintf(out, "warning: %v\n", err)
}
