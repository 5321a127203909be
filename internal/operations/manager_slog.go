package operations

import (
	"context"
	"log/slog"
	"time"
)

// logOperationStart logs the start of a run
func (m *Manager) logOperationStart(ctx context.Context, state *OperationState) {
	attrs := []any{
		slog.String("operation_id", state.ID),
		slog.Bool("dry_run", state.DryRun),
	}
	if state.Paths != nil {
		attrs = append(attrs,
			slog.String("roster", state.Paths.Roster),
			slog.String("lookup", state.Paths.Lookup),
			slog.String("output", state.Paths.Output))
	}
	m.logger.InfoContext(ctx, "operation_start", attrs...)
}

// logOperationComplete logs the completion of a run
func (m *Manager) logOperationComplete(ctx context.Context, state *OperationState) {
	m.logger.InfoContext(ctx, "operation_complete",
		slog.String("operation_id", state.ID),
		slog.String("status", string(state.Status)),
		slog.Duration("duration", state.Duration()))
}

// logOperationError logs a run failure
func (m *Manager) logOperationError(ctx context.Context, operationID string, err error) {
	errorMsg := "unknown error"
	if err != nil {
		errorMsg = err.Error()
	}
	m.logger.ErrorContext(ctx, "operation_error",
		slog.String("operation_id", operationID),
		slog.String("error", errorMsg))
}

// logStageStart logs the start of a Step execution
func (m *Manager) logStageStart(ctx context.Context, operationID, stepID string, number, total int) {
	m.logger.InfoContext(ctx, "stage_start",
		slog.String("operation_id", operationID),
		slog.String("step", stepID),
		slog.Int("stage_number", number),
		slog.Int("total_stages", total))
}

// logStageComplete logs the completion of a Step execution
func (m *Manager) logStageComplete(ctx context.Context, operationID, stepID string, duration time.Duration) {
	m.logger.InfoContext(ctx, "stage_complete",
		slog.String("operation_id", operationID),
		slog.String("step", stepID),
		slog.Duration("duration", duration))
}

// logStageSkipped logs a Step that did not run
func (m *Manager) logStageSkipped(ctx context.Context, operationID, stepID, reason string) {
	m.logger.InfoContext(ctx, "stage_skipped",
		slog.String("operation_id", operationID),
		slog.String("step", stepID),
		slog.String("reason", reason))
}

// logStageError logs a Step error
func (m *Manager) logStageError(ctx context.Context, operationID, stepID string, err error) {
	m.logger.ErrorContext(ctx, "stage_error",
		slog.String("operation_id", operationID),
		slog.String("step", stepID),
		slog.String("error", err.Error()))
}
