// Package lookup holds the researcher directory used to resolve instructor names.
package lookup

import (
	"log/slog"
	"sort"
	"strings"

	"esplorocli/internal/dataprocessing"
	loadererrors "esplorocli/internal/errors"
	"esplorocli/pkg/contracts/domain"
)

// Directory maps researcher display names to researcher identifiers.
// It is read-only once built.
type Directory struct {
	ids        map[string]string
	duplicates map[string]int
}

var _ dataprocessing.Resolver = (*Directory)(nil)

// Load reads the lookup workbook at path.
func Load(path string) (*Directory, error) {
	table, err := dataprocessing.ReadTable(path)
	if err != nil {
		return nil, err
	}
	return FromTable(table)
}

// FromTable builds a directory from a table with Name and researcherUserID columns.
// Names are trimmed and blank names skipped. When a name repeats, the last row wins.
func FromTable(t *domain.Table) (*Directory, error) {
	if missing := t.MissingColumns(domain.ColumnLookupName, domain.ColumnLookupResearcher); len(missing) > 0 {
		return nil, loadererrors.MissingColumnsError(t.Source, missing)
	}

	d := &Directory{
		ids:        make(map[string]string, t.Len()),
		duplicates: make(map[string]int),
	}
	names := t.Column(domain.ColumnLookupName)
	ids := t.Column(domain.ColumnLookupResearcher)
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := d.ids[name]; seen {
			d.duplicates[name]++
		}
		d.ids[name] = strings.TrimSpace(ids[i])
	}

	slog.Debug("Researcher directory built",
		slog.String("file", t.Source),
		slog.Int("names", len(d.ids)),
		slog.Int("duplicate_names", len(d.duplicates)))
	return d, nil
}

// NewDirectory builds a directory from an in-memory mapping.
func NewDirectory(ids map[string]string) *Directory {
	d := &Directory{
		ids:        make(map[string]string, len(ids)),
		duplicates: make(map[string]int),
	}
	for name, id := range ids {
		d.ids[name] = id
	}
	return d
}

// Lookup returns the identifier for name.
func (d *Directory) Lookup(name string) (string, bool) {
	id, ok := d.ids[name]
	return id, ok
}

// Len returns the number of distinct names.
func (d *Directory) Len() int {
	return len(d.ids)
}

// Duplicates returns, sorted, the names that appeared on more than one row.
func (d *Directory) Duplicates() []string {
	names := make([]string, 0, len(d.duplicates))
	for name := range d.duplicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
