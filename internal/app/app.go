package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/radiusfit/internal/cli"
	"github.com/agbru/radiusfit/internal/config"
	apperrors "github.com/agbru/radiusfit/internal/errors"
	"github.com/agbru/radiusfit/internal/logging"
	"github.com/agbru/radiusfit/internal/metrics"
	"github.com/agbru/radiusfit/internal/observability"
	"github.com/agbru/radiusfit/internal/pipeline"
	"github.com/agbru/radiusfit/internal/ui"
)

// Application represents the radiusfit application instance.
type Application struct {
	Config    config.AppConfig
	Presenter cli.ReportPresenter
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithPresenter sets a custom ReportPresenter for the application.
func WithPresenter(p cli.ReportPresenter) AppOption {
	return func(a *Application) { a.Presenter = p }
}

// New creates a new Application instance by parsing and validating
// command-line arguments. Every returned error except flag.ErrHelp has
// already been reported on errWriter; use apperrors.ExitCodeFor to map it to
// an exit status.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "radiusfit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	ui.InitTheme(cfg.NoColor)
	if err := cfg.Validate(); err != nil {
		reportError(errWriter, err)
		return nil, err
	}

	if app.Presenter == nil {
		app.Presenter = cli.NewReportPresenter(cfg.Quiet, cfg.Verbose)
	}
	app.Config = cfg
	return app, nil
}

// Run executes the fit and writes the report to out. It returns the process
// exit code. Nothing is written to out unless the fit succeeds.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	ui.InitTheme(a.Config.NoColor)

	level := zerolog.ErrorLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	logger := logging.NewConsoleLogger(a.ErrWriter, "radiusfit", level, a.Config.NoColor)

	tracer, shutdown, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     a.Config.Trace,
		ServiceName: "radiusfit",
		Writer:      a.ErrWriter,
		Pretty:      a.Config.Verbose,
	})
	if err != nil {
		reportError(a.ErrWriter, err)
		return apperrors.ExitErrorGeneric
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("trace shutdown failed", err)
		}
	}()

	opts := []pipeline.Option{pipeline.WithLogger(logger), pipeline.WithTracer(tracer)}
	var collector *metrics.FitCollector
	if a.Config.Metrics {
		if collector, err = metrics.NewFitCollector(nil); err != nil {
			reportError(a.ErrWriter, err)
			return apperrors.ExitErrorGeneric
		}
		opts = append(opts, pipeline.WithMetrics(collector))
	}

	req := a.Config.ToRequest()
	outcome, err := pipeline.Run(ctx, req, opts...)
	if err != nil {
		reportError(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}

	a.Presenter.PresentHeader(req, out)
	if apperrors.IsWarning(outcome.Fit.Warning) {
		a.Presenter.PresentWarning(outcome.Fit.Warning, a.ErrWriter)
	}
	a.Presenter.PresentOutcome(outcome, out)

	if collector != nil {
		collector.RecordMemory(metrics.ReadMemory())
		fmt.Fprintln(out)
		if err := collector.WriteText(out); err != nil {
			reportError(a.ErrWriter, err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

// reportError writes err to w behind a colored "Error:" label.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ui.ErrorLabel("Error:"), err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
