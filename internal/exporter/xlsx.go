package exporter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	loadererrors "esplorocli/internal/errors"
	"esplorocli/pkg/contracts/domain"
)

// DefaultSheet is the single sheet every exported workbook carries.
const DefaultSheet = "Sheet1"

// XLSXWriter writes a table to a single-sheet workbook
type XLSXWriter struct {
	logger  *slog.Logger
	numeric map[string]bool
}

// NewXLSXWriter creates a workbook writer. Columns listed in
// domain.NumericFields are written as numbers where they parse as one.
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	numeric := make(map[string]bool)
	for _, f := range domain.NumericFields() {
		numeric[f] = true
	}
	return &XLSXWriter{logger: logger, numeric: numeric}
}

// WriteTable writes t to path: header row first, one row per record, no index column.
func (w *XLSXWriter) WriteTable(path string, t *domain.Table) error {
	w.logger.Info("Writing workbook",
		slog.String("file_path", path),
		slog.Int("record_count", t.Len()))

	f := excelize.NewFile()
	defer f.Close()

	if err := w.fill(f, t); err != nil {
		return loadererrors.WriteError(path, err)
	}
	return writeAtomic(path, func(out io.Writer) error {
		return f.Write(out)
	})
}

func (w *XLSXWriter) fill(f *excelize.File, t *domain.Table) error {
	sw, err := f.NewStreamWriter(DefaultSheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(t.Headers))
	numericCols := make([]bool, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
		numericCols[i] = w.numeric[h]
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = value
			if numericCols[j] {
				if n, ok := numericCell(value); ok {
					cells[j] = n
				}
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return sw.Flush()
}
