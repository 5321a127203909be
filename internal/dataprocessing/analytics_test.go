package dataprocessing

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryBuilder(t *testing.T) {
	b := newSummaryBuilder()
	for i := 0; i < 5; i++ {
		b.read()
	}
	b.dropped(DropReasonStatus)
	b.dropped(DropReasonFormat)
	b.dropped(DropReasonFormat)
	b.retained()
	b.retained()
	b.misses([]string{"Zed", "Amy", "Zed"})
	b.date("TBA", "")
	b.date("", "")
	b.date("2024-01-01", "01/01/2024")
	b.enrollment("4")
	b.enrollment(" 8 ")
	b.enrollment("n/a")

	s := b.build()
	assert.Equal(t, 5, s.RowsRead)
	assert.Equal(t, 2, s.RowsRetained)
	assert.Equal(t, 3, s.RowsDropped())
	assert.Equal(t, 3, s.UnresolvedInstructors)
	assert.Equal(t, []string{"Amy", "Zed"}, s.UnresolvedNames)
	assert.Equal(t, 1, s.InvalidDates)
	assert.Equal(t, EnrollmentStats{Sections: 2, Total: 12, Mean: 6, Median: 6}, s.Enrollment)
}

func TestSummaryBuilder_Empty(t *testing.T) {
	s := newSummaryBuilder().build()
	assert.Equal(t, 0, s.RowsDropped())
	assert.Empty(t, s.UnresolvedNames)
	assert.Equal(t, EnrollmentStats{}, s.Enrollment)
}

func TestSummary_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	s := &Summary{
		RowsRead:     3,
		RowsRetained: 1,
		Dropped:      map[DropReason]int{DropReasonFormat: 2},
		Enrollment:   EnrollmentStats{Sections: 1, Total: 25, Mean: 25, Median: 25},
	}
	logger.Info("Transform complete", slog.Any("summary", s))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	summary, ok := entry["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), summary["rows_read"])
	assert.Equal(t, float64(2), summary["dropped_format"])
	assert.Equal(t, float64(25), summary["enrollment"].(map[string]interface{})["total"])
}
