// Package operations runs the loader as an ordered pipeline of steps.
//
// Core Components:
//
// Manager: runs the registered steps in order against an OperationState, opening a
// span and recording metrics per step. The first failing step ends the run and the
// steps after it are marked skipped.
//
// Step: a single unit of work. The loader registers three: load (researcher lookup
// and roster, read concurrently), transform (filter and derive activity rows) and
// export (write the output file). Steps implementing Skipper may opt out of a run;
// the export step does so on dry runs.
//
// Registry: keeps steps in registration order and rejects duplicate IDs.
//
// State: carries resolved paths, loaded tables, the transform summary and the
// runtime state of each step.
//
// Example usage:
//
//	registry, err := operations.NewLoaderRegistry(metrics, logger)
//	if err != nil {
//		return err
//	}
//	manager := operations.NewManager(registry, tracer, metrics, logger)
//	state := operations.NewOperationState(runID, paths)
//	err = manager.Run(ctx, state)
package operations
