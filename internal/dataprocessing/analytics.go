package dataprocessing

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// Summary describes one transform run
type Summary struct {
	RowsRead     int
	RowsRetained int
	Dropped      map[DropReason]int

	// UnresolvedInstructors counts every instructor occurrence without an identifier;
	// UnresolvedNames lists the distinct names, sorted.
	UnresolvedInstructors int
	UnresolvedNames       []string

	// InvalidDates counts non-blank start or end dates that could not be parsed.
	InvalidDates int

	Enrollment EnrollmentStats
}

// EnrollmentStats summarises the numeric enrollment counts of retained rows
type EnrollmentStats struct {
	Sections int
	Total    float64
	Mean     float64
	Median   float64
}

// RowsDropped returns the number of filtered rows across all reasons.
func (s *Summary) RowsDropped() int {
	n := 0
	for _, c := range s.Dropped {
		n += c
	}
	return n
}

// DroppedByReason returns the drop tallies keyed by plain strings.
func (s *Summary) DroppedByReason() map[string]int {
	out := make(map[string]int, len(s.Dropped))
	for reason, n := range s.Dropped {
		out[string(reason)] = n
	}
	return out
}

// LogValue implements slog.LogValuer
func (s *Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("rows_read", s.RowsRead),
		slog.Int("rows_retained", s.RowsRetained),
		slog.Int("dropped_status", s.Dropped[DropReasonStatus]),
		slog.Int("dropped_format", s.Dropped[DropReasonFormat]),
		slog.Int("unresolved_instructors", s.UnresolvedInstructors),
		slog.Int("unresolved_names", len(s.UnresolvedNames)),
		slog.Int("invalid_dates", s.InvalidDates),
		slog.Group("enrollment",
			slog.Int("sections", s.Enrollment.Sections),
			slog.Float64("total", s.Enrollment.Total),
			slog.Float64("mean", s.Enrollment.Mean),
			slog.Float64("median", s.Enrollment.Median),
		),
	)
}

// summaryBuilder accumulates per-row observations during a transform
type summaryBuilder struct {
	summary     Summary
	unresolved  map[string]struct{}
	enrollments stats.Float64Data
}

func newSummaryBuilder() *summaryBuilder {
	return &summaryBuilder{
		summary:    Summary{Dropped: make(map[DropReason]int)},
		unresolved: make(map[string]struct{}),
	}
}

func (b *summaryBuilder) read() {
	b.summary.RowsRead++
}

func (b *summaryBuilder) dropped(reason DropReason) {
	b.summary.Dropped[reason]++
}

func (b *summaryBuilder) retained() {
	b.summary.RowsRetained++
}

func (b *summaryBuilder) misses(names []string) {
	b.summary.UnresolvedInstructors += len(names)
	for _, name := range names {
		b.unresolved[name] = struct{}{}
	}
}

// date records a date cell and its formatted result.
func (b *summaryBuilder) date(raw, formatted string) {
	if formatted == "" && strings.TrimSpace(raw) != "" {
		b.summary.InvalidDates++
	}
}

func (b *summaryBuilder) enrollment(raw string) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		b.enrollments = append(b.enrollments, v)
	}
}

func (b *summaryBuilder) build() *Summary {
	s := b.summary

	s.UnresolvedNames = make([]string, 0, len(b.unresolved))
	for name := range b.unresolved {
		s.UnresolvedNames = append(s.UnresolvedNames, name)
	}
	sort.Strings(s.UnresolvedNames)

	// stats returns an error only for empty input, which leaves the zero values.
	s.Enrollment.Sections = b.enrollments.Len()
	s.Enrollment.Total, _ = stats.Sum(b.enrollments)
	s.Enrollment.Mean, _ = stats.Mean(b.enrollments)
	s.Enrollment.Median, _ = stats.Median(b.enrollments)

	return &s
}
