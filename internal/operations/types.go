package operations

// Pipeline step identifiers
const (
	StepIDLoad      = "load"
	StepIDTransform = "transform"
	StepIDExport    = "export"
)

// Pipeline step names
const (
	StepNameLoad      = "Load Inputs"
	StepNameTransform = "Transform Roster"
	StepNameExport    = "Export Activities"
)

// Step metadata keys
const (
	MetadataLookupNames    = "lookup_names"
	MetadataDuplicateNames = "duplicate_names"
	MetadataRosterRows     = "roster_rows"
	MetadataRowsRetained   = "rows_retained"
	MetadataRowsDropped    = "rows_dropped"
	MetadataOutputFile     = "output_file"
	MetadataOutputFormat   = "output_format"
)

// OperationStatusValue represents the overall operation status
type OperationStatusValue string

const (
	OperationStatusPending   OperationStatusValue = "pending"
	OperationStatusRunning   OperationStatusValue = "running"
	OperationStatusCompleted OperationStatusValue = "completed"
	OperationStatusFailed    OperationStatusValue = "failed"
)
