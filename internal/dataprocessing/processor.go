package dataprocessing

import (
	"log/slog"

	loadererrors "esplorocli/internal/errors"
	"esplorocli/pkg/contracts/domain"
)

var _ Processor = (*Transformer)(nil)

// Transformer derives activity rows from roster rows
type Transformer struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewTransformer creates a transformer resolving instructors through r
func NewTransformer(r Resolver, logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{
		resolver: r,
		logger:   logger,
	}
}

// Transform filters the roster and maps every retained row to the activity fields,
// followed by the roster columns that no field consumes.
func (t *Transformer) Transform(roster *domain.Table) (*domain.Table, *Summary, error) {
	if missing := roster.MissingColumns(domain.RosterColumns()...); len(missing) > 0 {
		return nil, nil, loadererrors.MissingColumnsError(roster.Source, missing)
	}

	fields := domain.ActivityFields()
	passthrough := passthroughColumns(roster.Headers, fields)

	headers := make([]string, 0, len(fields)+len(passthrough))
	headers = append(headers, fields...)
	for _, idx := range passthrough {
		headers = append(headers, roster.Headers[idx])
	}

	summary := newSummaryBuilder()
	rows := make([][]string, 0, roster.Len())
	for i := 0; i < roster.Len(); i++ {
		rec := roster.Record(i)
		summary.read()

		reason := Classify(rec.Get(domain.ColumnSectionStatus), rec.Get(domain.ColumnInstructionalFormat))
		if reason != DropReasonNone {
			summary.dropped(reason)
			continue
		}
		summary.retained()

		values := t.deriveFields(rec, summary)
		row := make([]string, len(headers))
		for j, field := range fields {
			row[j] = values[field]
		}
		cells := rec.Cells()
		for j, idx := range passthrough {
			row[len(fields)+j] = cells[idx]
		}
		rows = append(rows, row)
	}

	result := summary.build()
	if result.UnresolvedInstructors > 0 {
		t.logger.Debug("Instructors without researcher identifier",
			slog.Any("names", result.UnresolvedNames))
	}

	return domain.NewTable(headers, rows), result, nil
}

// deriveFields computes the activity values of one retained row. Fields absent
// from the map are empty.
func (t *Transformer) deriveFields(rec domain.Record, summary *summaryBuilder) map[string]string {
	ids, misses := ResearcherIDs(rec.Get(domain.ColumnInstructors), t.resolver)
	summary.misses(misses)

	start := FormatDate(rec.Get(domain.ColumnStartDate))
	summary.date(rec.Get(domain.ColumnStartDate), start)
	end := FormatDate(rec.Get(domain.ColumnEndDate))
	summary.date(rec.Get(domain.ColumnEndDate), end)

	enrollment := rec.Get(domain.ColumnEnrollmentCount)
	summary.enrollment(enrollment)

	return map[string]string{
		domain.FieldActivityCategory:   domain.ActivityCategoryTeaching,
		domain.FieldActivityType:       domain.ActivityTypeCourse,
		domain.FieldActivityName:       rec.Get(domain.ColumnSection),
		domain.FieldResearcherUserID:   ids,
		domain.FieldActivityStartDate:  start,
		domain.FieldActivityEndDate:    end,
		domain.FieldActivityAttributes: ActivityAttributes(rec.Get(domain.ColumnCourseTags)),
		domain.FieldCourseID:           CourseID(rec.Get(domain.ColumnCourseSubject), rec.Get(domain.ColumnCourseNumber)),
		domain.FieldCourseName:         rec.Get(domain.ColumnTitle),
		domain.FieldCourseSection:      CourseSection(rec.Get(domain.ColumnSection)),
		domain.FieldCourseType:         CourseType(rec.Get(domain.ColumnInstructionalFormat)),
		domain.FieldCourseEnrollment:   enrollment,
		domain.FieldCourseLevel:        rec.Get(domain.ColumnAcademicLevel),
		domain.FieldCourseTerm:         CourseTerm(rec.Get(domain.ColumnAcademicPeriod)),
		domain.LocalField(1):           DeliveryMode(rec.Get(domain.ColumnDeliveryMode)),
	}
}

// passthroughColumns returns the positions of roster columns that are neither
// activity fields nor consumed by one, in roster order.
func passthroughColumns(headers, fields []string) []int {
	excluded := make(map[string]bool, len(fields))
	for _, f := range fields {
		excluded[f] = true
	}
	for _, c := range domain.ConsumedColumns() {
		excluded[c] = true
	}

	var idx []int
	for i, h := range headers {
		if !excluded[h] {
			idx = append(idx, i)
		}
	}
	return idx
}
