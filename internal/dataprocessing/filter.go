package dataprocessing

// DropReason names why a roster row was excluded.
type DropReason string

const (
	DropReasonNone   DropReason = ""
	DropReasonStatus DropReason = "status"
	DropReasonFormat DropReason = "format"
)

// Exact, case-sensitive matches.
var (
	excludedStatuses = map[string]bool{
		"Canceled":    true,
		"Preliminary": true,
	}
	excludedFormats = map[string]bool{
		"Clinical":          true,
		"Independent Study": true,
		"Internship":        true,
	}
)

// Classify returns the reason a row with the given section status and
// instructional format is dropped, or DropReasonNone when it is kept.
func Classify(status, format string) DropReason {
	if excludedStatuses[status] {
		return DropReasonStatus
	}
	if excludedFormats[format] {
		return DropReasonFormat
	}
	return DropReasonNone
}

// Retain reports whether a row is kept.
func Retain(status, format string) bool {
	return Classify(status, format) == DropReasonNone
}
