package dataprocessing

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ActivityDateLayout is the MM/DD/YYYY form the import format expects.
const ActivityDateLayout = "01/02/2006"

// Largest serial Excel can display (9999-12-31).
const maxExcelSerial = 2958465

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/06",
	"1-2-2006",
	"2006/1/2",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"02-Jan-2006",
}

// ParseDate reads a roster date cell. Numeric values are Excel serial days.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 1 || serial > maxExcelSerial {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate normalises a date cell to MM/DD/YYYY, or "" when it cannot be parsed.
func FormatDate(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return ""
	}
	return t.Format(ActivityDateLayout)
}
