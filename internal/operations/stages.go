package operations

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"esplorocli/internal/dataprocessing"
	"esplorocli/internal/exporter"
	"esplorocli/internal/infrastructure"
	"esplorocli/internal/lookup"
	"esplorocli/internal/validation"
	"esplorocli/pkg/contracts/domain"
)

// LoadStep reads the researcher lookup and the roster
type LoadStep struct {
	BaseStage
	validator *validation.FileValidator
	logger    *slog.Logger
}

// NewLoadStep creates the load step
func NewLoadStep(logger *slog.Logger) *LoadStep {
	return &LoadStep{
		BaseStage: NewBaseStage(StepIDLoad, StepNameLoad),
		validator: validation.NewFileValidator(logger),
		logger:    infrastructure.WithComponent(logger, StepIDLoad),
	}
}

// Validate requires resolved input paths
func (s *LoadStep) Validate(state *OperationState) error {
	if state.Paths == nil || state.Paths.Roster == "" || state.Paths.Lookup == "" {
		return fmt.Errorf("input paths not resolved")
	}
	return nil
}

// Execute reads both input files concurrently
func (s *LoadStep) Execute(ctx context.Context, state *OperationState) error {
	for _, path := range []string{state.Paths.Lookup, state.Paths.Roster} {
		if err := s.validator.ValidateInputFile(path); err != nil {
			return err
		}
	}

	var (
		directory *lookup.Directory
		roster    *domain.Table
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		d, err := lookup.Load(state.Paths.Lookup)
		if err != nil {
			return fmt.Errorf("load researcher lookup: %w", err)
		}
		directory = d
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		t, err := dataprocessing.ReadTable(state.Paths.Roster)
		if err != nil {
			return fmt.Errorf("read roster: %w", err)
		}
		roster = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	state.Directory = directory
	state.Roster = roster

	stepState := state.GetStage(s.ID())
	stepState.SetMetadata(MetadataLookupNames, directory.Len())
	stepState.SetMetadata(MetadataRosterRows, roster.Len())

	if dups := directory.Duplicates(); len(dups) > 0 {
		stepState.SetMetadata(MetadataDuplicateNames, dups)
		s.logger.WarnContext(ctx, "Duplicate names in researcher lookup, last row wins",
			slog.String("file", state.Paths.Lookup),
			slog.Any("names", dups))
	}

	s.logger.InfoContext(ctx, "Inputs loaded",
		slog.Int("lookup_names", directory.Len()),
		slog.Int("roster_rows", roster.Len()))
	return nil
}

// TransformStep derives the activity table from the roster
type TransformStep struct {
	BaseStage
	metrics *infrastructure.LoaderMetrics
	logger  *slog.Logger
}

// NewTransformStep creates the transform step. metrics may be nil.
func NewTransformStep(metrics *infrastructure.LoaderMetrics, logger *slog.Logger) *TransformStep {
	return &TransformStep{
		BaseStage: NewBaseStage(StepIDTransform, StepNameTransform),
		metrics:   metrics,
		logger:    infrastructure.WithComponent(logger, StepIDTransform),
	}
}

// Validate requires the load step's output
func (s *TransformStep) Validate(state *OperationState) error {
	if state.Roster == nil || state.Directory == nil {
		return fmt.Errorf("roster and lookup must be loaded before transform")
	}
	return nil
}

// Execute filters the roster and builds the activity rows
func (s *TransformStep) Execute(ctx context.Context, state *OperationState) error {
	var processor dataprocessing.Processor = dataprocessing.NewTransformer(state.Directory, s.logger)

	activities, summary, err := processor.Transform(state.Roster)
	if err != nil {
		return err
	}
	state.Activities = activities
	state.Summary = summary

	s.metrics.RecordRows(ctx, infrastructure.RowCounts{
		Read:         summary.RowsRead,
		Retained:     summary.RowsRetained,
		Dropped:      summary.DroppedByReason(),
		LookupMisses: summary.UnresolvedInstructors,
		InvalidDates: summary.InvalidDates,
	})
	infrastructure.SetSpanAttributes(ctx, map[string]int{
		"rows.read":     summary.RowsRead,
		"rows.retained": summary.RowsRetained,
		"rows.dropped":  summary.RowsDropped(),
	})

	stepState := state.GetStage(s.ID())
	stepState.SetMetadata(MetadataRowsRetained, summary.RowsRetained)
	stepState.SetMetadata(MetadataRowsDropped, summary.RowsDropped())

	if len(summary.UnresolvedNames) > 0 {
		s.logger.WarnContext(ctx, "Instructors not found in researcher lookup",
			slog.Int("occurrences", summary.UnresolvedInstructors),
			slog.Any("names", summary.UnresolvedNames))
	}
	s.logger.InfoContext(ctx, "Transform complete", slog.Any("summary", summary))
	return nil
}

// ExportStep writes the activity table to the output file
type ExportStep struct {
	BaseStage
	validator *validation.FileValidator
	logger    *slog.Logger
}

// NewExportStep creates the export step
func NewExportStep(logger *slog.Logger) *ExportStep {
	return &ExportStep{
		BaseStage: NewBaseStage(StepIDExport, StepNameExport),
		validator: validation.NewFileValidator(logger),
		logger:    infrastructure.WithComponent(logger, StepIDExport),
	}
}

// ShouldSkip skips the export on dry runs
func (s *ExportStep) ShouldSkip(state *OperationState) (string, bool) {
	if state.DryRun {
		return "dry run", true
	}
	return "", false
}

// Validate requires transformed activities and an output path
func (s *ExportStep) Validate(state *OperationState) error {
	if state.Activities == nil {
		return fmt.Errorf("no activities to export")
	}
	if state.Paths == nil || state.Paths.Output == "" {
		return fmt.Errorf("output path not resolved")
	}
	return nil
}

// Execute writes the output file atomically
func (s *ExportStep) Execute(ctx context.Context, state *OperationState) error {
	path := state.Paths.Output
	if err := s.validator.ValidateOutputFile(path); err != nil {
		return err
	}

	format := exporter.ResolveFormat(state.OutputFormat, path)
	if err := exporter.NewWriter(format, s.logger).WriteTable(path, state.Activities); err != nil {
		return err
	}

	stepState := state.GetStage(s.ID())
	stepState.SetMetadata(MetadataOutputFile, path)
	stepState.SetMetadata(MetadataOutputFormat, format)

	s.logger.InfoContext(ctx, "Activities exported",
		slog.String("file", path),
		slog.String("format", format),
		slog.Int("rows", state.Activities.Len()))
	return nil
}

// NewLoaderRegistry registers the load, transform and export steps in order
func NewLoaderRegistry(metrics *infrastructure.LoaderMetrics, logger *slog.Logger) (*Registry, error) {
	registry := NewRegistry()
	for _, step := range []Step{
		NewLoadStep(logger),
		NewTransformStep(metrics, logger),
		NewExportStep(logger),
	} {
		if err := registry.Register(step); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
