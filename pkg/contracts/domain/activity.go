package domain

import "fmt"

// Activity import field names, in the order the import format expects them.
const (
	FieldActivityCategory    = "activityCategory"
	FieldActivityType        = "activityType"
	FieldActivityName        = "activityName"
	FieldResearcherUserID    = "researcherUserID"
	FieldActivityDescription = "activityDescription"
	FieldActivityKeywords    = "activityKeywords"
	FieldActivityStartDate   = "activityStartDate"
	FieldActivityEndDate     = "activityEndDate"
	FieldActivityAddress1    = "activityAddress1"
	FieldActivityAddress2    = "activityAddress2"
	FieldActivityCity        = "activityCity"
	FieldActivityState       = "activityState"
	FieldActivityCountry     = "activityCountry"
	FieldActivityAttributes  = "activityAttributes"
	FieldCourseID            = "activityCourseID"
	FieldCourseName          = "activityCourseName"
	FieldCourseSection       = "activityCourseSection"
	FieldCourseType          = "activityCourseType"
	FieldCourseEnrollment    = "activityCourseEnrollment"
	FieldCourseHours         = "activityCourseHours"
	FieldCourseLevel         = "activityCourseLevel"
	FieldCourseTerm          = "activityCourseTerm"
)

// LocalFieldCount is the number of activityLocalFieldN slots in the import format.
const LocalFieldCount = 15

// Fixed activity values.
const (
	ActivityCategoryTeaching = "activity.teaching"
	ActivityTypeCourse       = "activity.course"
)

// LocalField returns the name of the n-th local field slot (1-based).
func LocalField(n int) string {
	return fmt.Sprintf("activityLocalField%d", n)
}

// ActivityFields returns the fixed, ordered activity field sequence.
func ActivityFields() []string {
	fields := []string{
		FieldActivityCategory,
		FieldActivityType,
		FieldActivityName,
		FieldResearcherUserID,
		FieldActivityDescription,
		FieldActivityKeywords,
		FieldActivityStartDate,
		FieldActivityEndDate,
		FieldActivityAddress1,
		FieldActivityAddress2,
		FieldActivityCity,
		FieldActivityState,
		FieldActivityCountry,
		FieldActivityAttributes,
		FieldCourseID,
		FieldCourseName,
		FieldCourseSection,
		FieldCourseType,
		FieldCourseEnrollment,
		FieldCourseHours,
		FieldCourseLevel,
		FieldCourseTerm,
	}
	for i := 1; i <= LocalFieldCount; i++ {
		fields = append(fields, LocalField(i))
	}
	return fields
}

// NumericFields lists activity fields written as numbers when their value parses as one.
func NumericFields() []string {
	return []string{FieldCourseEnrollment}
}
