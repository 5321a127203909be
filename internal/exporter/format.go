package exporter

import (
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"esplorocli/pkg/contracts/domain"
)

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Writer serializes a table to a file
type Writer interface {
	WriteTable(path string, t *domain.Table) error
}

// ResolveFormat picks the output format: an explicit format wins, otherwise a
// ".csv" extension selects CSV and anything else the workbook format.
func ResolveFormat(format, path string) string {
	switch strings.ToLower(format) {
	case FormatCSV:
		return FormatCSV
	case FormatXLSX:
		return FormatXLSX
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

// NewWriter returns the writer for format
func NewWriter(format string, logger *slog.Logger) Writer {
	if format == FormatCSV {
		return NewCSVWriter(logger)
	}
	return NewXLSXWriter(logger)
}

// numericCell converts a cell to a number when it parses as one. Whole values
// become integers so counts are not written as 25.0.
func numericCell(value string) (interface{}, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return int64(v), true
	}
	return v, true
}
