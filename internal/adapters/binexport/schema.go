package binexport

// Document is the on-disk layout of an export.
type Document struct {
	Meta             Meta          `yaml:"meta"`
	CallGraphMdIndex float64       `yaml:"call_graph_md_index"`
	Functions        []FunctionDTO `yaml:"functions"`
}

// Meta identifies the exported executable.
type Meta struct {
	ExecutableName string `yaml:"executable_name"`
	ExecutableID   string `yaml:"executable_id"`
	Architecture   string `yaml:"architecture"`
}

// FunctionDTO is one function of the call graph with its flow graph.
type FunctionDTO struct {
	Address     uint64          `yaml:"address"`
	Name        string          `yaml:"name"`
	Library     bool            `yaml:"library"`
	MdIndex     float64         `yaml:"md_index"`
	Calls       []string        `yaml:"calls"`
	BasicBlocks []BasicBlockDTO `yaml:"basic_blocks"`
}

// BasicBlockDTO is one basic block of a flow graph.
type BasicBlockDTO struct {
	Address      uint64           `yaml:"address"`
	Successors   []uint64         `yaml:"successors"`
	Instructions []InstructionDTO `yaml:"instructions"`
}

// InstructionDTO is one disassembled instruction. Bytes are hex encoded.
type InstructionDTO struct {
	Address  uint64 `yaml:"address"`
	Mnemonic string `yaml:"mnemonic"`
	Operands string `yaml:"operands"`
	Bytes    string `yaml:"bytes"`
}

// infoDocument is the subset of Document needed for listings.
type infoDocument struct {
	Meta      Meta `yaml:"meta"`
	Functions []struct {
		Calls []string `yaml:"calls"`
	} `yaml:"functions"`
}
