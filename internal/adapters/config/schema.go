package config

// File represents the structure of a differ.yaml configuration file.
// Pointer fields distinguish "absent" from the zero value when overlaying.
type File struct {
	Threads  *int        `yaml:"threads"`
	Cache    CacheDTO    `yaml:"cache"`
	Exporter ExporterDTO `yaml:"exporter"`
	Matching MatchingDTO `yaml:"matching"`
}

// CacheDTO configures the per-worker decode cache.
type CacheDTO struct {
	Size *int `yaml:"size"`
}

// ExporterDTO configures the disassembler used by the export phase.
type ExporterDTO struct {
	Executable string   `yaml:"executable"`
	Args       []string `yaml:"args"`
}

// MatchingDTO holds the two ordered step lists.
type MatchingDTO struct {
	Function   []StepDTO `yaml:"function"`
	BasicBlock []StepDTO `yaml:"basic_block"`
}

// StepDTO is one matching step.
type StepDTO struct {
	Algorithm  string  `yaml:"algorithm"`
	Confidence float64 `yaml:"confidence"`
}

// overlay applies the values set in f on top of base.
func (f *File) overlay(base *File) {
	if f.Threads != nil {
		base.Threads = f.Threads
	}
	if f.Cache.Size != nil {
		base.Cache.Size = f.Cache.Size
	}
	if f.Exporter.Executable != "" {
		base.Exporter.Executable = f.Exporter.Executable
	}
	if f.Exporter.Args != nil {
		base.Exporter.Args = f.Exporter.Args
	}
	if len(f.Matching.Function) > 0 {
		base.Matching.Function = f.Matching.Function
	}
	if len(f.Matching.BasicBlock) > 0 {
		base.Matching.BasicBlock = f.Matching.BasicBlock
	}
}
