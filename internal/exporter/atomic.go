package exporter

import (
	"io"
	"os"
	"path/filepath"

	loadererrors "esplorocli/internal/errors"
)

// writeAtomic streams content into a temporary sibling of path and renames it
// into place. On any failure the temporary file is removed and path is untouched.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return loadererrors.WriteError(path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return loadererrors.WriteError(path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return loadererrors.WriteError(path, err)
	}
	if err := tmp.Sync(); err != nil {
		return loadererrors.WriteError(path, err)
	}
	if err := tmp.Close(); err != nil {
		return loadererrors.WriteError(path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return loadererrors.WriteError(path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return loadererrors.WriteError(path, err)
	}
	return nil
}
