package operations

import (
	"sync"
	"time"

	"esplorocli/internal/config"
	"esplorocli/internal/dataprocessing"
	"esplorocli/internal/lookup"
	"esplorocli/pkg/contracts/domain"
)

// OperationState carries the inputs, intermediate data and step states of one run
type OperationState struct {
	mu sync.RWMutex

	ID        string               `json:"id"`
	Status    OperationStatusValue `json:"status"`
	StartTime time.Time            `json:"start_time"`
	EndTime   *time.Time           `json:"end_time,omitempty"`
	Error     error                `json:"error,omitempty"`

	// Steps holds per-step state; order preserves registration order.
	Steps map[string]*StepState `json:"steps"`
	order []string

	// Inputs
	Paths        *config.Paths
	OutputFormat string
	DryRun       bool

	// Produced by the steps
	Directory  *lookup.Directory
	Roster     *domain.Table
	Activities *domain.Table
	Summary    *dataprocessing.Summary
}

// NewOperationState creates a new operation state
func NewOperationState(id string, paths *config.Paths) *OperationState {
	return &OperationState{
		ID:        id,
		Status:    OperationStatusPending,
		StartTime: time.Now(),
		Steps:     make(map[string]*StepState),
		Paths:     paths,
	}
}

// Start marks the operation as running
func (p *OperationState) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Status = OperationStatusRunning
	p.StartTime = time.Now()
}

// Complete marks the operation as completed
func (p *OperationState) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusCompleted
}

// Fail marks the operation as failed
func (p *OperationState) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusFailed
	p.Error = err
}

// GetStage returns the state of a specific Step
func (p *OperationState) GetStage(stepID string) *StepState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Steps[stepID]
}

// SetStage updates the state of a specific Step
func (p *OperationState) SetStage(stepID string, state *StepState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.Steps[stepID]; !exists {
		p.order = append(p.order, stepID)
	}
	p.Steps[stepID] = state
}

// StepStates returns the step states in execution order
func (p *OperationState) StepStates() []*StepState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	states := make([]*StepState, 0, len(p.order))
	for _, id := range p.order {
		states = append(states, p.Steps[id])
	}
	return states
}

// Duration returns the duration of the operation execution
func (p *OperationState) Duration() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.EndTime != nil {
		return p.EndTime.Sub(p.StartTime)
	}
	return time.Since(p.StartTime)
}

// HasFailures returns true if any Step has failed
func (p *OperationState) HasFailures() bool {
	for _, s := range p.StepStates() {
		if s.GetStatus() == StepStatusFailed {
			return true
		}
	}
	return false
}
