package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths holds the fully resolved file locations for one run.
// This is the single source of truth for file paths once flags and config are merged.
type Paths struct {
	BaseDir string
	Roster  string
	Lookup  string
	Output  string
}

// GetPaths resolves the configured files against BaseDir, or the working directory
// when BaseDir is empty. Absolute paths are kept as given.
func GetPaths(files FilesConfig) (*Paths, error) {
	base := files.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}

	return &Paths{
		BaseDir: base,
		Roster:  resolve(base, files.Roster),
		Lookup:  resolve(base, files.Lookup),
		Output:  resolve(base, files.Output),
	}, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// LogPathResolution logs the resolved paths for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	logger.Debug("Resolved file paths",
		slog.String("base_dir", p.BaseDir),
		slog.String("roster", p.Roster),
		slog.String("lookup", p.Lookup),
		slog.String("output", p.Output))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
