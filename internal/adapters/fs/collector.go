// Package fs discovers exports and disassembler databases in batch directories.
package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/zerr"
)

// Collector implements ports.ExportCollector over the local file system.
type Collector struct{}

// NewCollector creates a Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect lists dir without descending into subdirectories. Exports are
// returned in name order. A database is only scheduled for export when dir
// has no export of the same name yet; of two databases sharing a name the
// one listed last in domain.DisassemblerExtensions wins.
func (c *Collector) Collect(dir string) (domain.ExportPlan, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.ExportPlan{}, zerr.With(zerr.Wrap(err, domain.ErrListFailed.Error()), "path", dir)
	}

	var plan domain.ExportPlan
	exported := make(map[string]bool)
	databases := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)

		switch {
		case ext == domain.ExportExtension:
			plan.Exports = append(plan.Exports, name)
			exported[stem] = true
		case slices.Contains(domain.DisassemblerExtensions, strings.ToLower(ext)):
			if prev, ok := databases[stem]; ok && rank(prev) > rank(name) {
				continue
			}
			databases[stem] = name
		}
	}

	for stem, name := range databases {
		if !exported[stem] {
			plan.Inputs = append(plan.Inputs, name)
		}
	}
	slices.Sort(plan.Inputs)

	return plan, nil
}

func rank(name string) int {
	return slices.Index(domain.DisassemblerExtensions, strings.ToLower(filepath.Ext(name)))
}

// ExportName maps a database name to the name of its export.
func ExportName(database string) string {
	return strings.TrimSuffix(database, filepath.Ext(database)) + domain.ExportExtension
}
