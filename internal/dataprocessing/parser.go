package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	loadererrors "esplorocli/internal/errors"
	"esplorocli/pkg/contracts/domain"
)

// utf8BOM is written by the CSV exporter and by Excel's "CSV UTF-8" save option.
const utf8BOM = "\uFEFF"

// ReadTable reads the first sheet of a workbook, or a CSV file, into a Table.
// The first row is the header row. Fully blank data rows are skipped.
func ReadTable(path string) (*domain.Table, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err = readCSVRows(path)
	} else {
		rows, err = readWorkbookRows(path)
	}
	if err != nil {
		return nil, err
	}

	table, err := buildTable(path, rows)
	if err != nil {
		return nil, err
	}

	slog.Debug("Table read",
		slog.String("file", path),
		slog.Int("columns", len(table.Headers)),
		slog.Int("rows", table.Len()))
	return table, nil
}

func readWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadererrors.FileNotFoundError(path, err)
		}
		return nil, loadererrors.ReadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, loadererrors.EmptySheetError(path)
	}

	// Raw values keep dates as serial numbers and counts unformatted.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, loadererrors.ReadError(path, fmt.Errorf("sheet %q: %w", sheets[0], err))
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadererrors.FileNotFoundError(path, err)
		}
		return nil, loadererrors.ReadError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, loadererrors.ReadError(path, err)
		}
		rows = append(rows, record)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

func buildTable(path string, rows [][]string) (*domain.Table, error) {
	if len(rows) == 0 || domain.IsBlank(rows[0]) {
		return nil, loadererrors.EmptySheetError(path)
	}

	width := len(rows[0])
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if domain.IsBlank(row) {
			continue
		}
		if len(row) > width {
			width = len(row)
		}
		data = append(data, row)
	}

	headers := make([]string, width)
	for i := range headers {
		if i < len(rows[0]) {
			headers[i] = strings.TrimSpace(rows[0][i])
		}
		if headers[i] == "" {
			headers[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}

	table := domain.NewTable(headers, data)
	table.Source = path
	return table, nil
}
