// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/gauss/config"
	"github.com/katalvlaran/gauss/gaussian"
	"github.com/katalvlaran/gauss/observe"
)

// Log formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// cliOptions holds the persistent flags shared by every subcommand.
type cliOptions struct {
	configPath string
	pivoting   string
	lu         bool
	decimals   int
	verbose    bool
	logFormat  string
	trace      bool
	metrics    bool
}

// session is the per-invocation solver plumbing built from cliOptions.
type session struct {
	solver   *gaussian.Solver[*big.Rat]
	failure  error
	shutdown func(context.Context) error
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "gauss",
		Short: "Solve linear systems exactly by Gaussian elimination",
		Long: `gauss reads a linear system A·x = b from a YAML file of decimal or
fractional literals and solves it over exact rational numbers.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML file with pivoting / lu settings")
	pf.StringVarP(&opts.pivoting, "pivoting", "p", "", "pivoting strategy: none, avoid zero, partial, scaled, complete")
	pf.BoolVar(&opts.lu, "lu", false, "keep row multipliers below the diagonal")
	pf.IntVar(&opts.decimals, "decimals", 0, "print numbers with this many decimals instead of fractions")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every elimination step to stderr")
	pf.StringVar(&opts.logFormat, "log-format", logFormatText, "log format: text or json")
	pf.BoolVar(&opts.trace, "trace", false, "print OpenTelemetry spans to stderr")
	pf.BoolVar(&opts.metrics, "metrics", false, "print solver metrics to stderr when done")

	root.AddCommand(newSolveCmd(opts), newEliminateCmd(opts), newSubstituteCmd(opts))

	return root
}

// resolveConfig layers environment, config file and flags, in that order.
// The file only overrides the keys it sets.
func resolveConfig(cmd *cobra.Command, opts *cliOptions) (config.Config, error) {
	c, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if opts.configPath != "" {
		if c, err = config.LoadFileOnto(c, opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("pivoting") {
		c.Pivoting = opts.pivoting
	}
	if flags.Changed("lu") {
		c.LU = opts.lu
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}

	return c, nil
}

// newLogger builds the stderr logger selected by --verbose and --log-format.
func newLogger(w io.Writer, opts *cliOptions) (*slog.Logger, error) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	ho := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(opts.logFormat) {
	case logFormatText:
		return slog.New(slog.NewTextHandler(w, ho)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(w, ho)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.logFormat)
	}
}

// newSession resolves the configuration and wires logging, tracing and
// metrics hooks into a rational solver.
func newSession(cmd *cobra.Command, opts *cliOptions) (*session, error) {
	c, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	solverOpts, err := config.Options[*big.Rat](c)
	if err != nil {
		return nil, err
	}

	stderr := cmd.ErrOrStderr()
	logger, err := newLogger(stderr, opts)
	if err != nil {
		return nil, err
	}

	rt := &session{shutdown: func(context.Context) error { return nil }}
	solverOpts = append(solverOpts,
		gaussian.WithZero(new(big.Rat)),
		gaussian.WithHooks(observe.Logging[*big.Rat](logger)),
		gaussian.WithHooks(gaussian.Hooks[*big.Rat]{
			OnError: func(err error) { rt.failure = err },
		}),
	)

	if opts.trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithResource(resource.NewWithAttributes("", attribute.String("service.name", "gauss"))),
		)
		rt.shutdown = tp.Shutdown
		solverOpts = append(solverOpts, gaussian.WithHooks(observe.Tracing[*big.Rat](cmd.Context(), tp.Tracer(observe.TracerName))))
	}

	if opts.metrics {
		rt.registry = prometheus.NewRegistry()
		m, err := observe.NewMetrics(rt.registry)
		if err != nil {
			return nil, err
		}
		solverOpts = append(solverOpts, gaussian.WithHooks(observe.MetricsHooks[*big.Rat](m)))
	}

	rt.solver, err = gaussian.New[*big.Rat](ratField{}, solverOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("solver configured", slog.String("pivoting", c.Pivoting), slog.Bool("lu", c.LU))

	return rt, nil
}

// close flushes tracing and prints metrics.
func (rt *session) close(ctx context.Context, w io.Writer) error {
	if err := rt.shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracing: %w", err)
	}
	if rt.registry == nil {
		return nil
	}
	families, err := rt.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// openInput returns the named file, or stdin for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open system: %w", err)
	}

	return f, nil
}

// loadSystem reads and parses the system named by args[0].
func loadSystem(cmd *cobra.Command, args []string) (*systemFile, [][]*big.Rat, []*big.Rat, error) {
	in, err := openInput(cmd, args[0])
	if err != nil {
		return nil, nil, nil, err
	}
	defer in.Close()

	return readSystem(in)
}
