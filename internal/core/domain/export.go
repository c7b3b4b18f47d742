package domain

import "time"

// ExportResult reports the outcome of exporting one disassembler database.
type ExportResult struct {
	Input   string
	Output  string
	Elapsed time.Duration
	Err     error
}

// ExportPlan lists what a batch directory contains.
type ExportPlan struct {
	// Exports are export filenames relative to the directory.
	Exports []string
	// Inputs are disassembler databases that still need exporting, relative to the directory.
	Inputs []string
}
