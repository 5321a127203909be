package dataprocessing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	loadererrors "esplorocli/internal/errors"
	"esplorocli/pkg/contracts/domain"
)

type mapResolver map[string]string

func (m mapResolver) Lookup(name string) (string, bool) {
	id, ok := m[name]
	return id, ok
}

// rosterRow builds a full roster row from overrides of the default values.
func rosterRow(overrides map[string]string) map[string]string {
	row := map[string]string{
		domain.ColumnSectionStatus:       "Open",
		domain.ColumnInstructionalFormat: "Lecture",
		domain.ColumnSection:             "BIO-101-01 - Intro Biology",
		domain.ColumnInstructors:         "Jane Doe\nJohn Smith",
		domain.ColumnStartDate:           "2024-08-26",
		domain.ColumnEndDate:             "2024-12-13",
		domain.ColumnCourseSubject:       "Biology (BIO)",
		domain.ColumnCourseNumber:        "101",
		domain.ColumnTitle:               "Introduction to Biology",
		domain.ColumnCourseTags:          "GENR-123 foo\nGENR-456 bar",
		domain.ColumnEnrollmentCount:     "25",
		domain.ColumnAcademicLevel:       "Undergraduate",
		domain.ColumnAcademicPeriod:      "Fall 2024 Semester",
		domain.ColumnDeliveryMode:        "In Person",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func rosterTable(rows ...map[string]string) *domain.Table {
	headers := domain.RosterColumns()
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = r[h]
		}
		data = append(data, cells)
	}
	return domain.NewTable(headers, data)
}

var testDirectory = mapResolver{"Jane Doe": "R1", "John Smith": "R2"}

func TestTransform_DerivesFields(t *testing.T) {
	out, summary, err := NewTransformer(testDirectory, nil).Transform(rosterTable(rosterRow(nil)))
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())

	rec := out.Record(0)
	want := map[string]string{
		domain.FieldActivityCategory:   "activity.teaching",
		domain.FieldActivityType:       "activity.course",
		domain.FieldActivityName:       "BIO-101-01 - Intro Biology",
		domain.FieldResearcherUserID:   "R1;R2",
		domain.FieldActivityStartDate:  "08/26/2024",
		domain.FieldActivityEndDate:    "12/13/2024",
		domain.FieldActivityAttributes: "activity.123;activity.456",
		domain.FieldCourseID:           "BIO 101",
		domain.FieldCourseName:         "Introduction to Biology",
		domain.FieldCourseSection:      "101",
		domain.FieldCourseType:         "course.lecture",
		domain.FieldCourseEnrollment:   "25",
		domain.FieldCourseLevel:        "Undergraduate",
		domain.FieldCourseTerm:         "term.fall",
		domain.LocalField(1):           "Delivery Mode: In Person",
		domain.FieldActivityKeywords:   "",
		domain.FieldCourseHours:        "",
	}
	for field, value := range want {
		assert.Equal(t, value, rec.Get(field), field)
	}

	assert.Equal(t, 1, summary.RowsRead)
	assert.Equal(t, 1, summary.RowsRetained)
	assert.Equal(t, 0, summary.RowsDropped())
}

func TestTransform_ColumnOrder(t *testing.T) {
	headers := append([]string{"Extra Before"}, domain.RosterColumns()...)
	headers = append(headers, "activityName", "Extra After")
	row := make([]string, len(headers))
	for i := range row {
		row[i] = "x"
	}
	roster := domain.NewTable(headers, [][]string{row})

	out, _, err := NewTransformer(testDirectory, nil).Transform(roster)
	require.NoError(t, err)

	want := append(domain.ActivityFields(),
		"Extra Before",
		domain.ColumnSectionStatus,
		domain.ColumnCourseTags,
		"Extra After",
	)
	assert.Equal(t, want, out.Headers)
}

func TestTransform_Filtering(t *testing.T) {
	roster := rosterTable(
		rosterRow(map[string]string{domain.ColumnSection: "keep-1"}),
		rosterRow(map[string]string{domain.ColumnSectionStatus: "Canceled"}),
		rosterRow(map[string]string{domain.ColumnSectionStatus: "Preliminary"}),
		rosterRow(map[string]string{domain.ColumnInstructionalFormat: "Clinical"}),
		rosterRow(map[string]string{domain.ColumnInstructionalFormat: "Independent Study"}),
		rosterRow(map[string]string{domain.ColumnInstructionalFormat: "Internship"}),
		rosterRow(map[string]string{domain.ColumnSectionStatus: "canceled", domain.ColumnSection: "keep-2"}),
	)

	out, summary, err := NewTransformer(testDirectory, nil).Transform(roster)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep-1", "keep-2"}, out.Column(domain.FieldActivityName))
	assert.Equal(t, 7, summary.RowsRead)
	assert.Equal(t, 2, summary.RowsRetained)
	assert.Equal(t, 2, summary.Dropped[DropReasonStatus])
	assert.Equal(t, 3, summary.Dropped[DropReasonFormat])
	assert.Equal(t, map[string]int{"status": 2, "format": 3}, summary.DroppedByReason())
}

func TestTransform_RecoversMalformedCells(t *testing.T) {
	roster := rosterTable(rosterRow(map[string]string{
		domain.ColumnStartDate:      "not a date",
		domain.ColumnEndDate:        "",
		domain.ColumnInstructors:    "Jane Doe\nUnknown Person",
		domain.ColumnCourseTags:     "",
		domain.ColumnAcademicPeriod: "",
		domain.ColumnDeliveryMode:   "",
	}))

	out, summary, err := NewTransformer(testDirectory, nil).Transform(roster)
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())

	rec := out.Record(0)
	assert.Equal(t, "", rec.Get(domain.FieldActivityStartDate))
	assert.Equal(t, "", rec.Get(domain.FieldActivityEndDate))
	assert.Equal(t, "R1;", rec.Get(domain.FieldResearcherUserID))
	assert.Equal(t, "", rec.Get(domain.FieldActivityAttributes))
	assert.Equal(t, "", rec.Get(domain.FieldCourseTerm))
	assert.Equal(t, "Delivery Mode: ", rec.Get(domain.LocalField(1)))

	assert.Equal(t, 1, summary.InvalidDates)
	assert.Equal(t, 1, summary.UnresolvedInstructors)
	assert.Equal(t, []string{"Unknown Person"}, summary.UnresolvedNames)
}

func TestTransform_MissingColumns(t *testing.T) {
	roster := domain.NewTable([]string{domain.ColumnSection, domain.ColumnTitle}, nil)
	roster.Source = "WorkdayCourses.xlsx"

	_, _, err := NewTransformer(testDirectory, nil).Transform(roster)
	require.Error(t, err)
	assert.Equal(t, loadererrors.CodeMissingColumns, loadererrors.CodeOf(err))
	assert.Contains(t, err.Error(), domain.ColumnSectionStatus)
	assert.Contains(t, err.Error(), "WorkdayCourses.xlsx")
	assert.NotContains(t, err.Error(), domain.ColumnTitle+",")
}

func TestTransform_Deterministic(t *testing.T) {
	roster := rosterTable(
		rosterRow(map[string]string{domain.ColumnCourseTags: "GENR-ZZ GENR-aa GENR-mm"}),
		rosterRow(map[string]string{domain.ColumnInstructors: "John Smith\nJane Doe\nJohn Smith"}),
	)
	tr := NewTransformer(testDirectory, nil)

	first, _, err := tr.Transform(roster)
	require.NoError(t, err)
	second, _, err := tr.Transform(roster)
	require.NoError(t, err)

	assert.Equal(t, first.Headers, second.Headers)
	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, "activity.aa;activity.mm;activity.zz", first.Record(0).Get(domain.FieldActivityAttributes))
	assert.Equal(t, "R2;R1;R2", first.Record(1).Get(domain.FieldResearcherUserID))
}

func TestTransform_EnrollmentSummary(t *testing.T) {
	roster := rosterTable(
		rosterRow(map[string]string{domain.ColumnEnrollmentCount: "10"}),
		rosterRow(map[string]string{domain.ColumnEnrollmentCount: "20"}),
		rosterRow(map[string]string{domain.ColumnEnrollmentCount: "60"}),
		rosterRow(map[string]string{domain.ColumnEnrollmentCount: ""}),
		rosterRow(map[string]string{domain.ColumnEnrollmentCount: "99", domain.ColumnSectionStatus: "Canceled"}),
	)

	_, summary, err := NewTransformer(testDirectory, nil).Transform(roster)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Enrollment.Sections)
	assert.InDelta(t, 90, summary.Enrollment.Total, 1e-9)
	assert.InDelta(t, 30, summary.Enrollment.Mean, 1e-9)
	assert.InDelta(t, 20, summary.Enrollment.Median, 1e-9)
}

var (
	statusGen = rapid.SampledFrom([]string{"Open", "Closed", "Canceled", "Preliminary", "Waitlist", ""})
	formatGen = rapid.SampledFrom([]string{"Lecture", "Lab", "Seminar", "Clinical", "Independent Study", "Internship", "Studio"})
)

func TestTransform_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "rows")
		rows := make([]map[string]string, n)
		kept := 0
		for i := range rows {
			status := statusGen.Draw(t, "status")
			format := formatGen.Draw(t, "format")
			if Retain(status, format) {
				kept++
			}
			rows[i] = rosterRow(map[string]string{
				domain.ColumnSectionStatus:       status,
				domain.ColumnInstructionalFormat: format,
				domain.ColumnStartDate:           rapid.String().Draw(t, "start"),
				domain.ColumnCourseTags:          rapid.String().Draw(t, "tags"),
			})
		}

		out, summary, err := NewTransformer(testDirectory, nil).Transform(rosterTable(rows...))
		if err != nil {
			t.Fatalf("transform: %v", err)
		}
		if out.Len() != kept || summary.RowsRetained != kept {
			t.Fatalf("retained %d rows, want %d", out.Len(), kept)
		}
		if out.Len() > n {
			t.Fatalf("output has more rows (%d) than input (%d)", out.Len(), n)
		}
		if summary.RowsRetained+summary.RowsDropped() != n {
			t.Fatalf("retained+dropped = %d, want %d", summary.RowsRetained+summary.RowsDropped(), n)
		}

		for i := 0; i < out.Len(); i++ {
			rec := out.Record(i)
			if Classify(rec.Get(domain.ColumnSectionStatus), "") == DropReasonStatus {
				t.Fatalf("row %d has excluded status %q", i, rec.Get(domain.ColumnSectionStatus))
			}
			if !strings.HasPrefix(rec.Get(domain.LocalField(1)), "Delivery Mode: ") {
				t.Fatalf("row %d local field 1 = %q", i, rec.Get(domain.LocalField(1)))
			}
			for f := 2; f <= domain.LocalFieldCount; f++ {
				if v := rec.Get(domain.LocalField(f)); v != "" {
					t.Fatalf("row %d %s = %q, want empty", i, domain.LocalField(f), v)
				}
			}
		}
	})
}
