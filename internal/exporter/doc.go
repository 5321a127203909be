// Package exporter writes activity tables to disk.
//
// XLSXWriter produces a single-sheet workbook with a bold header row and numeric
// enrollment cells. CSVWriter produces UTF-8 CSV with a BOM so Excel detects the
// encoding. Both write to a temporary sibling file and rename it into place, so a
// failed export never leaves a partial file behind.
//
// Example usage:
//
//	format := exporter.ResolveFormat(cfg.Files.OutputFormat, paths.Output)
//	err := exporter.NewWriter(format, logger).WriteTable(paths.Output, activities)
package exporter
