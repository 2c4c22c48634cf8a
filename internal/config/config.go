// Package config parses the command line into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/radiusfit/internal/ellipsoid"
	apperrors "github.com/agbru/radiusfit/internal/errors"
	"github.com/agbru/radiusfit/internal/pipeline"
)

// AppConfig holds the resolved configuration of a run.
type AppConfig struct {
	// EquatorialRadius is the semi-major axis Re, in meters.
	EquatorialRadius float64
	// PolarRadius is the semi-minor axis Rp, in meters.
	PolarRadius float64
	// Ellipsoid is the preset that supplied the radii, if any.
	Ellipsoid string
	// Samples is the number of latitudes sampled over [0, π/2].
	Samples int
	// Degree is the polynomial degree in s2.
	Degree int
	// Quiet prints only the coefficients and the two error figures.
	Quiet bool
	// Verbose enables debug logging and per-stage timings.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Metrics appends the Prometheus text exposition of the run to the output.
	Metrics bool
	// Trace writes the OpenTelemetry spans of the run to the error stream.
	Trace bool
	// ShowVersion is set by --version.
	ShowVersion bool
}

// Default returns the configuration used when no flag is given: the
// pipeline's default request with every option off.
func Default() AppConfig {
	req := pipeline.DefaultRequest()
	return AppConfig{
		EquatorialRadius: req.Ellipsoid.Equatorial,
		PolarRadius:      req.Ellipsoid.Polar,
		Samples:          req.Samples,
		Degree:           req.Degree,
	}
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Parse errors and usage are written to errWriter. A --help request returns
// flag.ErrHelp; every other failure is a ConfigError or an
// InvalidParameterError.
//
// Explicit -re/-rp values take precedence over the radii of an -ellipsoid
// preset.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := Default()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(fs, programName, errWriter) }

	fs.Float64Var(&cfg.EquatorialRadius, "re", cfg.EquatorialRadius, "Equatorial radius in meters.")
	fs.Float64Var(&cfg.EquatorialRadius, "equatorial-radius", cfg.EquatorialRadius, "Equatorial radius in meters (alias for -re).")
	fs.Float64Var(&cfg.PolarRadius, "rp", cfg.PolarRadius, "Polar radius in meters.")
	fs.Float64Var(&cfg.PolarRadius, "polar-radius", cfg.PolarRadius, "Polar radius in meters (alias for -rp).")
	fs.StringVar(&cfg.Ellipsoid, "ellipsoid", "", "Reference ellipsoid preset supplying both radii ("+strings.Join(ellipsoid.PresetNames(), ", ")+").")
	fs.IntVar(&cfg.Samples, "n", cfg.Samples, "Number of latitude samples (at least 2).")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Number of latitude samples (alias for -n).")
	fs.IntVar(&cfg.Degree, "d", cfg.Degree, "Polynomial degree in sin^2(latitude).")
	fs.IntVar(&cfg.Degree, "degree", cfg.Degree, "Polynomial degree (alias for -d).")
	fs.BoolVar(&cfg.Quiet, "q", false, "Quiet mode: coefficients and errors only.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Quiet mode (alias for -q).")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose mode: debug logs, condition number and stage timings.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose mode (alias for -v).")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Print the Prometheus metrics of the run after the report.")
	fs.BoolVar(&cfg.Trace, "trace", false, "Write OpenTelemetry spans of the run to stderr as JSON.")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}

	if cfg.Ellipsoid != "" {
		preset, err := ellipsoid.Lookup(cfg.Ellipsoid)
		if err != nil {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
			return AppConfig{}, err
		}
		cfg.Ellipsoid = preset.Name
		if !isFlagSetAny(fs, "re", "equatorial-radius") {
			cfg.EquatorialRadius = preset.Equatorial
		}
		if !isFlagSetAny(fs, "rp", "polar-radius") {
			cfg.PolarRadius = preset.Polar
		}
	}
	return cfg, nil
}

// Validate checks the configuration before any computation starts.
func (c AppConfig) Validate() error {
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return c.ToRequest().Validate()
}

// ToRequest converts the configuration into a pipeline request.
func (c AppConfig) ToRequest() pipeline.Request {
	return pipeline.Request{
		Ellipsoid: ellipsoid.Parameters{Equatorial: c.EquatorialRadius, Polar: c.PolarRadius},
		Samples:   c.Samples,
		Degree:    c.Degree,
	}
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

func printUsage(fs *flag.FlagSet, programName string, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options]\n\n", programName)
	fmt.Fprintln(w, "Fits r(phi) of an oblate ellipsoid with a polynomial in s2 = sin^2(phi)")
	fmt.Fprintln(w, "and reports the maximum and RMS error of the fit in meters.")
	fmt.Fprintln(w, "\nOptions:")
	fs.PrintDefaults()
}
