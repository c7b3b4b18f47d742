package domain

import "slices"

// Instruction is a decoded instruction. Instances are shared through a decode cache,
// so they must be treated as read-only once created.
type Instruction struct {
	Address  uint64
	Mnemonic InternedString
	Operands string
	Bytes    []byte
}

// BasicBlock is a straight-line sequence of instructions.
type BasicBlock struct {
	Address      uint64
	Instructions []*Instruction
	// Hash is a content fingerprint of the block's instruction bytes.
	Hash uint64
}

// FlowGraph is the control flow graph of one function.
type FlowGraph struct {
	EntryPoint  uint64
	Name        string
	Library     bool
	MdIndex     float64
	Hash        uint64
	Callees     []string
	BasicBlocks []BasicBlock
	Edges       int

	// FixedPoint is non-nil once the function has been matched.
	FixedPoint *FixedPoint
}

// InstructionCount returns the number of instructions across all basic blocks.
func (f *FlowGraph) InstructionCount() int {
	n := 0
	for i := range f.BasicBlocks {
		n += len(f.BasicBlocks[i].Instructions)
	}
	return n
}

// FlowGraphs is the collection of flow graphs of one binary, ordered by entry point.
type FlowGraphs []*FlowGraph

// ResetMatches clears the match state so that the graphs can be diffed again.
func (fgs FlowGraphs) ResetMatches() {
	for _, fg := range fgs {
		fg.FixedPoint = nil
	}
}

// Sort orders the collection by entry point.
func (fgs FlowGraphs) Sort() {
	slices.SortFunc(fgs, func(a, b *FlowGraph) int {
		switch {
		case a.EntryPoint < b.EntryPoint:
			return -1
		case a.EntryPoint > b.EntryPoint:
			return 1
		default:
			return 0
		}
	})
}

// FlowGraphInfo holds per-function summary data collected while reading an export.
type FlowGraphInfo struct {
	Name             string
	BasicBlocks      int
	Edges            int
	InstructionCount int
}

// FlowGraphInfos maps entry points to their summary data.
type FlowGraphInfos map[uint64]FlowGraphInfo

// CallGraph describes one binary at the function level.
type CallGraph struct {
	// Filename is the export's base name without extension. It names output files.
	Filename       string
	ExecutableName string
	ExecutableID   string
	MdIndex        float64
	Vertices       int
	Edges          int
}

// ExportInfo identifies an export in results and listings.
type ExportInfo struct {
	Path           string `json:"path,omitzero"`
	Filename       string `json:"filename"`
	ExecutableName string `json:"executable_name,omitzero"`
	ExecutableID   string `json:"executable_id,omitzero"`
	Functions      int    `json:"functions"`
	Calls          int    `json:"calls"`
}

// Info summarizes the call graph for results and listings.
func (c *CallGraph) Info() ExportInfo {
	return ExportInfo{
		Filename:       c.Filename,
		ExecutableName: c.ExecutableName,
		ExecutableID:   c.ExecutableID,
		Functions:      c.Vertices,
		Calls:          c.Edges,
	}
}

// GraphSlot is one loaded side of a diff.
type GraphSlot struct {
	CallGraph  *CallGraph
	FlowGraphs FlowGraphs
	Infos      FlowGraphInfos
}

// MatchingContext is the input handed to the diff engine for one pair.
type MatchingContext struct {
	Primary   *GraphSlot
	Secondary *GraphSlot
}
