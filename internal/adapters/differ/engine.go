// Package differ provides the reference diff engine and scorer.
//
// Matching runs in two levels. Function steps pair flow graphs of the primary and
// secondary export; each newly paired function then has its basic blocks paired by
// the basic-block steps. Every step only considers candidates that are still
// unmatched, and only pairs keys that occur exactly once on each side.
package differ

import (
	"context"
	"slices"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/zerr"
)

// Engine implements ports.DiffEngine.
type Engine struct {
	functions map[string]functionKey
	blocks    map[string]blockKey
}

// NewEngine creates an Engine with every built-in matching step.
func NewEngine() *Engine {
	return &Engine{
		functions: functionSteps(),
		blocks:    blockSteps(),
	}
}

// Supports reports whether algorithm names a built-in step of either level.
func (e *Engine) Supports(algorithm string) bool {
	if _, ok := e.functions[algorithm]; ok {
		return true
	}
	_, ok := e.blocks[algorithm]
	return ok
}

// Diff runs the function steps in order and returns the fixed points ordered by primary address.
// Previous match state on the flow graphs is discarded.
func (e *Engine) Diff(ctx context.Context, mc *domain.MatchingContext, steps domain.MatchingSteps) (domain.FixedPoints, error) {
	if mc == nil || mc.Primary == nil || mc.Secondary == nil {
		return nil, domain.Annotate(domain.ErrDiffFailed, "reason", "missing flow graphs")
	}
	mc.Primary.FlowGraphs.ResetMatches()
	mc.Secondary.FlowGraphs.ResetMatches()

	var fps domain.FixedPoints
	for _, step := range steps.Function {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, domain.ErrDiffFailed.Error())
		}
		key, ok := e.functions[step.Algorithm]
		if !ok {
			continue
		}

		matchUnique(
			unmatched(mc.Primary.FlowGraphs),
			unmatched(mc.Secondary.FlowGraphs),
			key, key,
			func(primary, secondary *domain.FlowGraph) {
				fp := &domain.FixedPoint{
					Primary:    primary.EntryPoint,
					Secondary:  secondary.EntryPoint,
					Step:       step.Algorithm,
					Confidence: step.Confidence,
				}
				primary.FixedPoint = fp
				secondary.FixedPoint = fp
				e.matchBlocks(fp, primary, secondary, steps.BasicBlock)
				fps = append(fps, fp)
			},
		)
	}

	slices.SortFunc(fps, func(a, b *domain.FixedPoint) int {
		switch {
		case a.Primary < b.Primary:
			return -1
		case a.Primary > b.Primary:
			return 1
		default:
			return 0
		}
	})
	return fps, nil
}

// matchBlocks pairs the basic blocks of a matched function and records the
// function's instruction similarity on fp.
func (e *Engine) matchBlocks(fp *domain.FixedPoint, primary, secondary *domain.FlowGraph, steps []domain.MatchingStep) {
	matched := make(map[*domain.BasicBlock]bool)
	matchedInstructions := 0

	for _, step := range steps {
		key, ok := e.blocks[step.Algorithm]
		if !ok {
			continue
		}
		keyOf := func(fg *domain.FlowGraph) func(*domain.BasicBlock) (uint64, bool) {
			return func(bb *domain.BasicBlock) (uint64, bool) {
				return key(fg, bb)
			}
		}

		matchUnique(
			unmatchedBlocks(primary, matched),
			unmatchedBlocks(secondary, matched),
			keyOf(primary), keyOf(secondary),
			func(p, s *domain.BasicBlock) {
				matched[p] = true
				matched[s] = true
				matchedInstructions += min(len(p.Instructions), len(s.Instructions))
				fp.BasicBlocks = append(fp.BasicBlocks, domain.BasicBlockFixedPoint{
					Primary:   p.Address,
					Secondary: s.Address,
					Step:      step.Algorithm,
				})
			},
		)
	}

	slices.SortFunc(fp.BasicBlocks, func(a, b domain.BasicBlockFixedPoint) int {
		switch {
		case a.Primary < b.Primary:
			return -1
		case a.Primary > b.Primary:
			return 1
		default:
			return 0
		}
	})

	total := primary.InstructionCount() + secondary.InstructionCount()
	if total == 0 {
		fp.Similarity = 1
		return
	}
	fp.Similarity = 2 * float64(matchedInstructions) / float64(total)
}

func unmatched(fgs domain.FlowGraphs) []*domain.FlowGraph {
	out := make([]*domain.FlowGraph, 0, len(fgs))
	for _, fg := range fgs {
		if fg.FixedPoint == nil {
			out = append(out, fg)
		}
	}
	return out
}

func unmatchedBlocks(fg *domain.FlowGraph, matched map[*domain.BasicBlock]bool) []*domain.BasicBlock {
	out := make([]*domain.BasicBlock, 0, len(fg.BasicBlocks))
	for i := range fg.BasicBlocks {
		if bb := &fg.BasicBlocks[i]; !matched[bb] {
			out = append(out, bb)
		}
	}
	return out
}

type bucket[T any] struct {
	primary, secondary T
	np, ns             int
}

// matchUnique calls match for every key that occurs exactly once among primary and
// exactly once among secondary, in primary order. Candidates without a key are ignored.
func matchUnique[T any](primary, secondary []T, primaryKey, secondaryKey func(T) (uint64, bool), match func(p, s T)) {
	buckets := make(map[uint64]*bucket[T])
	var order []uint64

	for _, p := range primary {
		k, ok := primaryKey(p)
		if !ok {
			continue
		}
		b := buckets[k]
		if b == nil {
			b = &bucket[T]{}
			buckets[k] = b
			order = append(order, k)
		}
		b.np++
		b.primary = p
	}
	for _, s := range secondary {
		k, ok := secondaryKey(s)
		if !ok {
			continue
		}
		if b := buckets[k]; b != nil {
			b.ns++
			b.secondary = s
		}
	}

	for _, k := range order {
		if b := buckets[k]; b.np == 1 && b.ns == 1 {
			match(b.primary, b.secondary)
		}
	}
}
