package dataprocessing

import (
	"esplorocli/pkg/contracts/domain"
)

// Processor turns a roster table into an activity table
type Processor interface {
	// Transform filters the roster and derives one activity row per retained row
	Transform(roster *domain.Table) (*domain.Table, *Summary, error)
}
