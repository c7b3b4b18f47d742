package domain

import "time"

// BasicBlockFixedPoint is a matched basic block inside a matched function.
type BasicBlockFixedPoint struct {
	Primary   uint64 `json:"primary"`
	Secondary uint64 `json:"secondary"`
	Step      string `json:"step"`
}

// FixedPoint is a confirmed correspondence between a primary and a secondary function.
type FixedPoint struct {
	Primary     uint64                 `json:"primary"`
	Secondary   uint64                 `json:"secondary"`
	Step        string                 `json:"step"`
	Confidence  float64                `json:"confidence"`
	Similarity  float64                `json:"similarity"`
	BasicBlocks []BasicBlockFixedPoint `json:"basic_blocks,omitzero"`
}

// FixedPoints is the set of matches produced for one pair.
type FixedPoints []*FixedPoint

// Histogram counts fixed points per matching step.
type Histogram map[string]int

// Total returns the number of fixed points in the histogram.
func (h Histogram) Total() int {
	n := 0
	for _, v := range h {
		n += v
	}
	return n
}

// Well-known Counts entries.
const (
	CountFunctionsPrimaryLibrary      = "functions primary (library)"
	CountFunctionsPrimaryNonLibrary   = "functions primary (non-library)"
	CountFunctionsSecondaryLibrary    = "functions secondary (library)"
	CountFunctionsSecondaryNonLibrary = "functions secondary (non-library)"
	CountFunctionMatchesLibrary       = "function matches (library)"
	CountFunctionMatchesNonLibrary    = "function matches (non-library)"
	CountBasicBlocksPrimary           = "basic blocks primary"
	CountBasicBlocksSecondary         = "basic blocks secondary"
	CountBasicBlockMatches            = "basic block matches"
	CountInstructionsPrimary          = "instructions primary"
	CountInstructionsSecondary        = "instructions secondary"
	CountInstructionMatches           = "instruction matches"
	CountFlowGraphEdgesPrimary        = "flow graph edges primary"
	CountFlowGraphEdgesSecondary      = "flow graph edges secondary"
)

// CountEntry is one named category count.
type CountEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Counts is an ordered list of category counts.
type Counts []CountEntry

// Get returns the value of the named entry, or 0 if absent.
func (c Counts) Get(name string) int {
	for _, e := range c {
		if e.Name == name {
			return e.Value
		}
	}
	return 0
}

// Set updates the named entry, appending it if absent.
func (c *Counts) Set(name string, value int) {
	for i := range *c {
		if (*c)[i].Name == name {
			(*c)[i].Value = value
			return
		}
	}
	*c = append(*c, CountEntry{Name: name, Value: value})
}

// DiffResult is the outcome of diffing one pair.
type DiffResult struct {
	Primary     ExportInfo    `json:"primary"`
	Secondary   ExportInfo    `json:"secondary"`
	Similarity  float64       `json:"similarity"`
	Confidence  float64       `json:"confidence"`
	Matched     int           `json:"matched"`
	Counts      Counts        `json:"counts"`
	Histogram   Histogram     `json:"histogram"`
	FixedPoints FixedPoints   `json:"fixed_points"`
	Elapsed     time.Duration `json:"elapsed"`
	Created     time.Time     `json:"created"`
}

// PairSummary is what the operator sees for a successfully diffed pair.
type PairSummary struct {
	Pair       FilePair
	Elapsed    time.Duration
	Similarity float64
	Confidence float64
	Counts     Counts
}

// Summary builds the operator summary for the pair.
func (r *DiffResult) Summary(pair FilePair) PairSummary {
	return PairSummary{
		Pair:       pair,
		Elapsed:    r.Elapsed,
		Similarity: r.Similarity,
		Confidence: r.Confidence,
		Counts:     r.Counts,
	}
}
