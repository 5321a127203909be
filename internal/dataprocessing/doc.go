// Package dataprocessing turns a course roster into research-activity import rows.
//
// # Components
//
//  1. Reader: ReadTable loads the first sheet of a workbook (or a CSV file) into a
//     header-indexed domain.Table
//  2. Field derivations: pure functions such as ResearcherIDs, ActivityAttributes,
//     CourseID and FormatDate, each tolerant of blank input
//  3. Transformer: filters roster rows and builds the activity table
//  4. Summary: counts read, retained and dropped rows, lookup misses, unparseable
//     dates and enrollment statistics for the run
//
// # Usage
//
//	roster, err := dataprocessing.ReadTable("WorkdayCourses.xlsx")
//	if err != nil {
//	    return err
//	}
//	activities, summary, err := dataprocessing.NewTransformer(directory, logger).Transform(roster)
//
// # Data Flow
//
//	Roster workbook → ReadTable → Table → Transformer → activity Table + Summary
//
// # Error Handling
//
// Only whole-file problems are errors: unreadable files, empty sheets and missing
// required columns are reported as *errors.LoaderError values. Malformed cells
// never fail a row; the derived field is left empty and the summary counts it.
package dataprocessing
