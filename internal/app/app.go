package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"esplorocli/internal/config"
	"esplorocli/internal/exporter"
	"esplorocli/internal/infrastructure"
	"esplorocli/internal/operations"
)

// Options adjusts a single run of the application.
type Options struct {
	// DryRun loads and transforms the inputs without writing the output file.
	DryRun bool
	// Stdout receives the user-facing completion message. Defaults to os.Stdout.
	Stdout io.Writer
	// Logger replaces the global logger built from the logging config.
	Logger *slog.Logger
}

// Application represents the main application container
type Application struct {
	Config    *config.Config
	Paths     *config.Paths
	Logger    *slog.Logger
	Telemetry *infrastructure.Telemetry
	Metrics   *infrastructure.LoaderMetrics
	Manager   *operations.Manager

	options Options
}

// NewApplication wires logging, telemetry and the loader pipeline for cfg.
func NewApplication(ctx context.Context, cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	logger := opts.Logger
	if logger == nil {
		var err error
		logger, err = infrastructure.InitializeLogger(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	logger.InfoContext(ctx, "Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.Bool("dry_run", opts.DryRun))

	paths, err := config.GetPaths(cfg.Files)
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}
	paths.LogPathResolution(logger)

	tel, err := infrastructure.InitializeTelemetry(ctx, cfg.Telemetry, config.AppVersion, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	metrics, err := infrastructure.NewLoaderMetrics(tel.Meter)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	registry, err := operations.NewLoaderRegistry(metrics, logger)
	if err != nil {
		_ = tel.Shutdown(ctx)
		return nil, fmt.Errorf("failed to register steps: %w", err)
	}

	return &Application{
		Config:    cfg,
		Paths:     paths,
		Logger:    logger,
		Telemetry: tel,
		Metrics:   metrics,
		Manager:   operations.NewManager(registry, tel.Tracer, metrics, logger),
		options:   opts,
	}, nil
}

// Run executes the load, transform and export steps once and reports the outcome.
func (a *Application) Run(ctx context.Context) (*operations.OperationState, error) {
	runID := infrastructure.GenerateTraceID()
	ctx = infrastructure.WithTraceID(ctx, runID)

	state := operations.NewOperationState(runID, a.Paths)
	state.OutputFormat = a.Config.Files.OutputFormat
	state.DryRun = a.options.DryRun

	if err := a.Manager.Run(ctx, state); err != nil {
		return state, err
	}

	if a.options.DryRun {
		fmt.Fprintf(a.options.Stdout, "Dry run complete. %d of %d rows would be written to %s\n",
			state.Summary.RowsRetained, state.Summary.RowsRead, a.Config.Files.Output)
		return state, nil
	}

	fmt.Fprintf(a.options.Stdout, "Transformation complete. Output saved to %s\n", a.Config.Files.Output)
	a.Logger.InfoContext(ctx, "Output written",
		slog.String("output_file", a.Paths.Output),
		slog.String("output_format", exporter.ResolveFormat(state.OutputFormat, a.Paths.Output)))
	return state, nil
}

// Shutdown flushes telemetry and closes the log file.
func (a *Application) Shutdown(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down")

	var errs []error
	if a.Telemetry != nil {
		if err := a.Telemetry.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		errs = append(errs, fmt.Errorf("close log file: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}
