package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"esplorocli/pkg/contracts/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	return writeAtomic(filePath, func(out io.Writer) error {
		if options.BOMPrefix {
			if _, err := out.Write(utf8BOM); err != nil {
				return fmt.Errorf("failed to write BOM: %w", err)
			}
		}

		writer := csv.NewWriter(out)
		if len(options.Headers) > 0 {
			if err := writer.Write(options.Headers); err != nil {
				return fmt.Errorf("failed to write headers: %w", err)
			}
		}
		for i, record := range options.Records {
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write record %d: %w", i, err)
			}
		}
		writer.Flush()
		return writer.Error()
	})
}

// WriteTable writes t with a header row and a UTF-8 BOM
func (w *CSVWriter) WriteTable(path string, t *domain.Table) error {
	return w.WriteCSV(path, WriteOptions{
		Headers:   t.Headers,
		Records:   t.Rows,
		BOMPrefix: true,
	})
}
