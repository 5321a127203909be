package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	loadererrors "esplorocli/internal/errors"
)

// Spreadsheet extensions the loader can read.
var inputExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

// FileValidator checks input and output locations before a run touches them
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return loadererrors.FileNotFoundError(path, err)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return loadererrors.ReadError(path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return loadererrors.ReadError(path, fmt.Errorf("%s is a directory, not a file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return loadererrors.ReadError(path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateInputFile checks that path is a readable spreadsheet the loader understands
func (v *FileValidator) ValidateInputFile(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !inputExtensions[ext] {
		v.logger.Error("File is not a supported spreadsheet",
			slog.String("file", path),
			slog.String("extension", ext))
		return loadererrors.ReadError(path, fmt.Errorf("unsupported spreadsheet extension %q", ext))
	}

	// Excel leaves "~$" lock files next to open workbooks
	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Warn("Refusing temporary Excel file",
			slog.String("file", path))
		return loadererrors.ReadError(path, fmt.Errorf("file is a temporary Excel lock file"))
	}

	return nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return loadererrors.WriteError(dir, err)
	}

	// Verify it's writable by creating a probe file
	probe, err := os.CreateTemp(dir, ".write_test-*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return loadererrors.WriteError(dir, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateOutputFile checks that path can be created and is not an existing directory
func (v *FileValidator) ValidateOutputFile(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		v.logger.Error("Output path is a directory",
			slog.String("path", path))
		return loadererrors.WriteError(path, fmt.Errorf("%s is a directory", path))
	}
	return v.ValidateOutputDirectory(filepath.Dir(path))
}
