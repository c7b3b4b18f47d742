package differ

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/differ/internal/core/domain"
)

// Function steps.
const (
	StepFunctionNameHash     = "function: name hash matching"
	StepFunctionHash         = "function: hash matching"
	StepFunctionInstructions = "function: instruction count"
	StepFunctionCallSequence = "function: call sequence matching(exact)"
)

// Basic-block steps.
const (
	StepBlockHash             = "basicBlock: hash matching (4 instructions minimum)"
	StepBlockPrime            = "basicBlock: prime matching (4 instructions minimum)"
	StepBlockPrimeAny         = "basicBlock: prime matching (0 instructions minimum)"
	StepBlockInstructionCount = "basicBlock: instruction count matching"
	StepBlockEntryPoint       = "basicBlock: entry point matching"
)

// functionKey derives the matching key of a flow graph. ok is false when the
// flow graph cannot take part in the step.
type functionKey func(fg *domain.FlowGraph) (key uint64, ok bool)

// blockKey derives the matching key of a basic block of fg.
type blockKey func(fg *domain.FlowGraph, bb *domain.BasicBlock) (key uint64, ok bool)

func functionSteps() map[string]functionKey {
	return map[string]functionKey{
		StepFunctionNameHash:     byName,
		StepFunctionHash:         byHash,
		StepFunctionInstructions: byInstructionCount,
		StepFunctionCallSequence: byCallSequence,
	}
}

func blockSteps() map[string]blockKey {
	return map[string]blockKey{
		StepBlockHash:             blockByHash(4),
		StepBlockPrime:            blockByPrime(4),
		StepBlockPrimeAny:         blockByPrime(0),
		StepBlockInstructionCount: blockByInstructionCount,
		StepBlockEntryPoint:       blockByEntryPoint,
	}
}

// Names the disassembler generates carry no information.
var generatedPrefixes = []string{"sub_", "nullsub_", "j_sub_"}

func byName(fg *domain.FlowGraph) (uint64, bool) {
	if fg.Name == "" {
		return 0, false
	}
	for _, prefix := range generatedPrefixes {
		if strings.HasPrefix(fg.Name, prefix) {
			return 0, false
		}
	}
	return xxhash.Sum64String(fg.Name), true
}

func byHash(fg *domain.FlowGraph) (uint64, bool) {
	return fg.Hash, fg.Hash != 0 && fg.InstructionCount() > 0
}

func byInstructionCount(fg *domain.FlowGraph) (uint64, bool) {
	n := fg.InstructionCount()
	return uint64(n), n > 0
}

func byCallSequence(fg *domain.FlowGraph) (uint64, bool) {
	if len(fg.Callees) == 0 {
		return 0, false
	}
	return xxhash.Sum64String(strings.Join(fg.Callees, "\x00")), true
}

func blockByHash(minInstructions int) blockKey {
	return func(_ *domain.FlowGraph, bb *domain.BasicBlock) (uint64, bool) {
		return bb.Hash, len(bb.Instructions) >= minInstructions && len(bb.Instructions) > 0
	}
}

// blockByPrime keys a block by the multiset of its mnemonics, so reordered
// instructions still match.
func blockByPrime(minInstructions int) blockKey {
	return func(_ *domain.FlowGraph, bb *domain.BasicBlock) (uint64, bool) {
		if len(bb.Instructions) == 0 || len(bb.Instructions) < minInstructions {
			return 0, false
		}
		mnemonics := make([]string, len(bb.Instructions))
		for i, insn := range bb.Instructions {
			mnemonics[i] = insn.Mnemonic.String()
		}
		slices.Sort(mnemonics)

		d := xxhash.New()
		for _, m := range mnemonics {
			_, _ = d.WriteString(m)
			_, _ = d.WriteString("\x00")
		}
		return d.Sum64(), true
	}
}

func blockByInstructionCount(_ *domain.FlowGraph, bb *domain.BasicBlock) (uint64, bool) {
	n := len(bb.Instructions)
	return uint64(n), n > 0
}

func blockByEntryPoint(fg *domain.FlowGraph, bb *domain.BasicBlock) (uint64, bool) {
	return 0, bb.Address == fg.EntryPoint
}
