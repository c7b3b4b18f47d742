// Package binexport reads exported binaries.
package binexport

import (
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Reader implements ports.Reader for YAML exports.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the export at path into its call graph and flow graphs.
func (r *Reader) Read(
	path string,
	cache ports.DecodeCache,
) (*domain.CallGraph, domain.FlowGraphs, domain.FlowGraphInfos, error) {
	var doc Document
	if err := readYAML(path, &doc); err != nil {
		return nil, nil, nil, err
	}

	cg := &domain.CallGraph{
		Filename:       Filename(path),
		ExecutableName: doc.Meta.ExecutableName,
		ExecutableID:   doc.Meta.ExecutableID,
		MdIndex:        doc.CallGraphMdIndex,
		Vertices:       len(doc.Functions),
	}

	fgs := make(domain.FlowGraphs, 0, len(doc.Functions))
	infos := make(domain.FlowGraphInfos, len(doc.Functions))
	for i := range doc.Functions {
		fn := &doc.Functions[i]
		if _, dup := infos[fn.Address]; dup {
			return nil, nil, nil, parseError(path, zerr.With(zerr.New("duplicate function"), "address", fn.Address))
		}

		fg, err := buildFlowGraph(fn, cache)
		if err != nil {
			return nil, nil, nil, parseError(path, err)
		}
		cg.Edges += len(fn.Calls)
		fgs = append(fgs, fg)
		infos[fg.EntryPoint] = domain.FlowGraphInfo{
			Name:             fg.Name,
			BasicBlocks:      len(fg.BasicBlocks),
			Edges:            fg.Edges,
			InstructionCount: fg.InstructionCount(),
		}
	}
	fgs.Sort()

	return cg, fgs, infos, nil
}

// ReadInfo reads the executable metadata and graph sizes without decoding instructions.
func (r *Reader) ReadInfo(path string) (domain.ExportInfo, error) {
	var doc infoDocument
	if err := readYAML(path, &doc); err != nil {
		return domain.ExportInfo{}, err
	}

	info := domain.ExportInfo{
		Path:           path,
		Filename:       Filename(path),
		ExecutableName: doc.Meta.ExecutableName,
		ExecutableID:   doc.Meta.ExecutableID,
		Functions:      len(doc.Functions),
	}
	for _, fn := range doc.Functions {
		info.Calls += len(fn.Calls)
	}
	return info, nil
}

// Filename returns the base name of path without its extension.
func Filename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open export"), "path", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return parseError(path, err)
	}
	return nil
}

func parseError(path string, err error) error {
	return zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "path", path)
}

func buildFlowGraph(fn *FunctionDTO, cache ports.DecodeCache) (*domain.FlowGraph, error) {
	fg := &domain.FlowGraph{
		EntryPoint:  fn.Address,
		Name:        fn.Name,
		Library:     fn.Library,
		MdIndex:     fn.MdIndex,
		Callees:     fn.Calls,
		BasicBlocks: make([]domain.BasicBlock, 0, len(fn.BasicBlocks)),
	}

	fnHash := xxhash.New()
	for _, bbDTO := range fn.BasicBlocks {
		bb := domain.BasicBlock{
			Address:      bbDTO.Address,
			Instructions: make([]*domain.Instruction, 0, len(bbDTO.Instructions)),
		}

		bbHash := xxhash.New()
		for _, dto := range bbDTO.Instructions {
			insn, err := decode(dto, cache)
			if err != nil {
				return nil, zerr.With(err, "function", fn.Name)
			}
			bb.Instructions = append(bb.Instructions, insn)
			content := instructionContent(insn)
			_, _ = bbHash.Write(content)
			_, _ = fnHash.Write(content)
		}
		bb.Hash = bbHash.Sum64()

		fg.Edges += len(bbDTO.Successors)
		fg.BasicBlocks = append(fg.BasicBlocks, bb)
	}
	fg.Hash = fnHash.Sum64()

	return fg, nil
}

// decode returns the cached instruction for dto, decoding and caching it on a miss.
func decode(dto InstructionDTO, cache ports.DecodeCache) (*domain.Instruction, error) {
	raw, err := hex.DecodeString(dto.Bytes)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid instruction bytes"), "address", dto.Address)
	}

	key := instructionKey(dto.Address, dto.Mnemonic, dto.Operands, raw)
	if cache != nil {
		if insn, ok := cache.Get(key); ok {
			return insn, nil
		}
	}

	insn := &domain.Instruction{
		Address:  dto.Address,
		Mnemonic: domain.NewInternedString(dto.Mnemonic),
		Operands: dto.Operands,
		Bytes:    raw,
	}
	if cache != nil {
		cache.Add(key, insn)
	}
	return insn, nil
}

func instructionKey(address uint64, mnemonic, operands string, raw []byte) uint64 {
	d := xxhash.New()
	var addr [8]byte
	binary.LittleEndian.PutUint64(addr[:], address)
	_, _ = d.Write(addr[:])
	_, _ = d.WriteString(mnemonic)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(operands)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(raw)
	return d.Sum64()
}

// instructionContent is the address independent part of an instruction used for hashing.
func instructionContent(insn *domain.Instruction) []byte {
	if len(insn.Bytes) > 0 {
		return insn.Bytes
	}
	return []byte(insn.Mnemonic.String() + " " + insn.Operands + "\n")
}
