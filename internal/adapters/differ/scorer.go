package differ

import (
	"go.trai.ch/differ/internal/core/domain"
)

// Scorer implements ports.Scorer. Confidence weights come from the configured steps.
type Scorer struct {
	steps domain.MatchingSteps
}

// NewScorer creates a Scorer weighting fixed points by the confidence of their step.
func NewScorer(steps domain.MatchingSteps) *Scorer {
	return &Scorer{steps: steps}
}

// Histogram counts the fixed points per function step and tallies the match counts.
func (s *Scorer) Histogram(primary, secondary domain.FlowGraphs, fps domain.FixedPoints) (domain.Histogram, domain.Counts) {
	histogram := make(domain.Histogram)
	for _, fp := range fps {
		histogram[fp.Step]++
	}

	primaryByAddress := byAddress(primary)
	secondaryByAddress := byAddress(secondary)

	var libraryMatches, nonLibraryMatches, blockMatches, instructionMatches int
	for _, fp := range fps {
		p, s := primaryByAddress[fp.Primary], secondaryByAddress[fp.Secondary]
		if p == nil || s == nil {
			continue
		}
		if p.Library || s.Library {
			libraryMatches++
		} else {
			nonLibraryMatches++
		}

		blockMatches += len(fp.BasicBlocks)
		instructionMatches += matchedInstructions(p, s, fp.BasicBlocks)
	}

	pLib, pNonLib := libraryCounts(primary)
	sLib, sNonLib := libraryCounts(secondary)
	pBlocks, pInstructions, pEdges := sizes(primary)
	sBlocks, sInstructions, sEdges := sizes(secondary)

	counts := domain.Counts{
		{Name: domain.CountFunctionsPrimaryLibrary, Value: pLib},
		{Name: domain.CountFunctionsPrimaryNonLibrary, Value: pNonLib},
		{Name: domain.CountFunctionsSecondaryLibrary, Value: sLib},
		{Name: domain.CountFunctionsSecondaryNonLibrary, Value: sNonLib},
		{Name: domain.CountFunctionMatchesLibrary, Value: libraryMatches},
		{Name: domain.CountFunctionMatchesNonLibrary, Value: nonLibraryMatches},
		{Name: domain.CountBasicBlocksPrimary, Value: pBlocks},
		{Name: domain.CountBasicBlocksSecondary, Value: sBlocks},
		{Name: domain.CountBasicBlockMatches, Value: blockMatches},
		{Name: domain.CountInstructionsPrimary, Value: pInstructions},
		{Name: domain.CountInstructionsSecondary, Value: sInstructions},
		{Name: domain.CountInstructionMatches, Value: instructionMatches},
		{Name: domain.CountFlowGraphEdgesPrimary, Value: pEdges},
		{Name: domain.CountFlowGraphEdgesSecondary, Value: sEdges},
	}
	return histogram, counts
}

// Similarity averages the matched share of functions, basic blocks and instructions
// and weights the result by the confidence of the matches. It is in [0, 1].
func (s *Scorer) Similarity(primary, secondary *domain.CallGraph, histogram domain.Histogram, counts domain.Counts) float64 {
	if primary == nil || secondary == nil {
		return 0
	}

	functionMatches := counts.Get(domain.CountFunctionMatchesLibrary) + counts.Get(domain.CountFunctionMatchesNonLibrary)
	functions := ratio(functionMatches, primary.Vertices+secondary.Vertices)
	blocks := ratio(counts.Get(domain.CountBasicBlockMatches),
		counts.Get(domain.CountBasicBlocksPrimary)+counts.Get(domain.CountBasicBlocksSecondary))
	instructions := ratio(counts.Get(domain.CountInstructionMatches),
		counts.Get(domain.CountInstructionsPrimary)+counts.Get(domain.CountInstructionsSecondary))

	similarity := (functions + blocks + instructions) / 3 * s.Confidence(histogram)
	return min(max(similarity, 0), 1)
}

// Confidence is the mean step confidence over every fixed point in histogram.
func (s *Scorer) Confidence(histogram domain.Histogram) float64 {
	total := histogram.Total()
	if total == 0 {
		return 0
	}
	sum := 0.0
	for step, n := range histogram {
		sum += float64(n) * s.steps.Confidence(step)
	}
	return sum / float64(total)
}

// ratio is the share of matched items among both sides; each match covers one item per side.
func ratio(matches, total int) float64 {
	if total == 0 {
		return 0
	}
	return min(2*float64(matches)/float64(total), 1)
}

func byAddress(fgs domain.FlowGraphs) map[uint64]*domain.FlowGraph {
	m := make(map[uint64]*domain.FlowGraph, len(fgs))
	for _, fg := range fgs {
		m[fg.EntryPoint] = fg
	}
	return m
}

func libraryCounts(fgs domain.FlowGraphs) (library, nonLibrary int) {
	for _, fg := range fgs {
		if fg.Library {
			library++
		} else {
			nonLibrary++
		}
	}
	return library, nonLibrary
}

func sizes(fgs domain.FlowGraphs) (blocks, instructions, edges int) {
	for _, fg := range fgs {
		blocks += len(fg.BasicBlocks)
		instructions += fg.InstructionCount()
		edges += fg.Edges
	}
	return blocks, instructions, edges
}

func matchedInstructions(primary, secondary *domain.FlowGraph, bbs []domain.BasicBlockFixedPoint) int {
	pBlocks := blockLengths(primary)
	sBlocks := blockLengths(secondary)
	n := 0
	for _, bb := range bbs {
		n += min(pBlocks[bb.Primary], sBlocks[bb.Secondary])
	}
	return n
}

func blockLengths(fg *domain.FlowGraph) map[uint64]int {
	m := make(map[uint64]int, len(fg.BasicBlocks))
	for i := range fg.BasicBlocks {
		m[fg.BasicBlocks[i].Address] = len(fg.BasicBlocks[i].Instructions)
	}
	return m
}
