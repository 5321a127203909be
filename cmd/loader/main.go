package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esplorocli/internal/app"
	"esplorocli/internal/config"
	loadererrors "esplorocli/internal/errors"
	"esplorocli/internal/infrastructure"
	"esplorocli/pkg/contracts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// cliOptions holds the command line flags. Empty strings leave the configured value alone.
type cliOptions struct {
	configFile string
	roster     string
	lookup     string
	output     string
	format     string
	dryRun     bool
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}
	fs := flag.NewFlagSet("loader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file (defaults to loader.yaml or configs/loader.yaml when present)")
	fs.StringVar(&opts.roster, "in", "", "course roster workbook (default "+config.DefaultRosterFile+")")
	fs.StringVar(&opts.lookup, "lookup", "", "researcher lookup workbook (default "+config.DefaultLookupFile+")")
	fs.StringVar(&opts.output, "out", "", "output file (default "+config.DefaultOutputFile+")")
	fs.StringVar(&opts.format, "format", "", "output format: xlsx or csv (default from the output extension)")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "transform and report without writing the output file")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// applyFlags overlays the flags that were given onto cfg.
func applyFlags(cfg *config.Config, opts *cliOptions) error {
	if opts.roster != "" {
		cfg.Files.Roster = opts.roster
	}
	if opts.lookup != "" {
		cfg.Files.Lookup = opts.lookup
	}
	if opts.output != "" {
		cfg.Files.Output = opts.output
	}
	if opts.format != "" {
		cfg.Files.OutputFormat = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return loadererrors.ConfigError("invalid command line options", err)
	}
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Used until the configured logger exists.
	bootLogger := infrastructure.NewLogger(stderr, "info")

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		bootLogger.Error("Invalid arguments", slog.String("error", err.Error()))
		return 1
	}
	if opts.version {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return 0
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		bootLogger.Error("Failed to load configuration", slog.String("error", err.Error()))
		return 1
	}
	if err := applyFlags(cfg, opts); err != nil {
		bootLogger.Error("Failed to apply flags", slog.String("error", err.Error()))
		return 1
	}

	application, err := app.NewApplication(ctx, cfg, app.Options{DryRun: opts.dryRun, Stdout: stdout})
	if err != nil {
		bootLogger.Error("Failed to initialize application", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := application.Shutdown(shutdownCtx); err != nil {
			bootLogger.Error("Shutdown failed", slog.String("error", err.Error()))
		}
	}()

	if _, err := application.Run(ctx); err != nil {
		application.Logger.ErrorContext(ctx, "Loader failed",
			slog.String("error", err.Error()),
			slog.String("code", loadererrors.CodeOf(err)))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
