package domain

// Roster column names as exported by the scheduling system.
const (
	ColumnSectionStatus       = "Section Status"
	ColumnInstructionalFormat = "Instructional Format"
	ColumnSection             = "Section"
	ColumnInstructors         = "Instructors"
	ColumnStartDate           = "Start Date"
	ColumnEndDate             = "End Date"
	ColumnCourseSubject       = "Course Subject"
	ColumnCourseNumber        = "Course Number"
	ColumnTitle               = "Title"
	ColumnCourseTags          = "Course Tags"
	ColumnEnrollmentCount     = "Enrollment Count"
	ColumnAcademicLevel       = "Academic Level"
	ColumnAcademicPeriod      = "Academic Period"
	ColumnDeliveryMode        = "Delivery Mode"
)

// Lookup column names of the researcher reference table.
const (
	ColumnLookupName       = "Name"
	ColumnLookupResearcher = "researcherUserID"
)

// RosterColumns lists every column the roster must carry.
func RosterColumns() []string {
	return []string{
		ColumnSectionStatus,
		ColumnInstructionalFormat,
		ColumnSection,
		ColumnInstructors,
		ColumnStartDate,
		ColumnEndDate,
		ColumnCourseSubject,
		ColumnCourseNumber,
		ColumnTitle,
		ColumnCourseTags,
		ColumnEnrollmentCount,
		ColumnAcademicLevel,
		ColumnAcademicPeriod,
		ColumnDeliveryMode,
	}
}

// ConsumedColumns lists the roster columns that are folded into activity fields
// and therefore never passed through to the output.
func ConsumedColumns() []string {
	return []string{
		ColumnSection,
		ColumnInstructors,
		ColumnStartDate,
		ColumnEndDate,
		ColumnCourseSubject,
		ColumnCourseNumber,
		ColumnTitle,
		ColumnInstructionalFormat,
		ColumnEnrollmentCount,
		ColumnAcademicLevel,
		ColumnAcademicPeriod,
		ColumnDeliveryMode,
	}
}
