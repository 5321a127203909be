package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	loadererrors "esplorocli/internal/errors"
	"esplorocli/internal/infrastructure"
)

// Manager runs the registered steps in order and stops at the first failure
type Manager struct {
	registry *Registry
	tracer   trace.Tracer
	metrics  *infrastructure.LoaderMetrics
	logger   *slog.Logger
}

// NewManager creates a manager. metrics may be nil.
func NewManager(registry *Registry, tracer trace.Tracer, metrics *infrastructure.LoaderMetrics, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	return &Manager{
		registry: registry,
		tracer:   tracer,
		metrics:  metrics,
		logger:   infrastructure.WithComponent(logger, "operations"),
	}
}

// GetRegistry returns the step registry
func (m *Manager) GetRegistry() *Registry {
	return m.registry
}

// Run executes every registered step against state. When a step fails the
// remaining steps are marked skipped and the step error is returned.
func (m *Manager) Run(ctx context.Context, state *OperationState) error {
	steps := m.registry.List()
	for _, step := range steps {
		state.SetStage(step.ID(), NewStepState(step.ID(), step.Name()))
	}

	ctx, span := m.tracer.Start(ctx, "operation.run",
		trace.WithAttributes(
			attribute.String("operation.id", state.ID),
			attribute.Int("operation.steps", len(steps)),
			attribute.Bool("operation.dry_run", state.DryRun),
		))
	defer span.End()

	state.Start()
	m.logOperationStart(ctx, state)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			m.skipRemaining(ctx, state, steps[i:], "operation cancelled")
			return m.fail(ctx, span, state, loadererrors.StepError(step.ID(), err))
		}

		if err := m.executeStep(ctx, state, step, i+1, len(steps)); err != nil {
			m.skipRemaining(ctx, state, steps[i+1:], fmt.Sprintf("previous step %s failed", step.ID()))
			return m.fail(ctx, span, state, err)
		}
	}

	state.Complete()
	span.SetStatus(codes.Ok, "")
	m.logOperationComplete(ctx, state)
	return nil
}

func (m *Manager) fail(ctx context.Context, span trace.Span, state *OperationState, err error) error {
	state.Fail(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	m.logOperationError(ctx, state.ID, err)
	return err
}

// executeStep runs a single step inside its own span
func (m *Manager) executeStep(ctx context.Context, state *OperationState, step Step, number, total int) error {
	stepState := state.GetStage(step.ID())

	if skipper, ok := step.(Skipper); ok {
		if reason, skip := skipper.ShouldSkip(state); skip {
			stepState.Skip(reason)
			m.logStageSkipped(ctx, state.ID, step.ID(), reason)
			return nil
		}
	}

	ctx, span := m.tracer.Start(ctx, "operation.step."+step.ID(),
		trace.WithAttributes(
			attribute.String("step.id", step.ID()),
			attribute.String("step.name", step.Name()),
			attribute.Int("step.number", number),
		))
	defer span.End()

	m.logStageStart(ctx, state.ID, step.ID(), number, total)
	stepState.Start()
	start := time.Now()

	err := step.Validate(state)
	if err == nil {
		err = step.Execute(ctx, state)
	}
	duration := time.Since(start)
	m.metrics.RecordStep(ctx, step.ID(), duration, err)

	if err != nil {
		stepState.Fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.logStageError(ctx, state.ID, step.ID(), err)
		return loadererrors.StepError(step.ID(), err)
	}

	stepState.Complete()
	span.SetStatus(codes.Ok, "")
	m.logStageComplete(ctx, state.ID, step.ID(), duration)
	return nil
}

func (m *Manager) skipRemaining(ctx context.Context, state *OperationState, steps []Step, reason string) {
	for _, step := range steps {
		if s := state.GetStage(step.ID()); s != nil && s.GetStatus() == StepStatusPending {
			s.Skip(reason)
			m.logStageSkipped(ctx, state.ID, step.ID(), reason)
		}
	}
}
