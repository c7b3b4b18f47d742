package domain

import "strings"

// MatchingStep is one matching heuristic tagged with a confidence weight.
type MatchingStep struct {
	Algorithm  string
	Confidence float64
}

// MatchingSteps holds the ordered step sequences for both matching levels.
type MatchingSteps struct {
	Function   []MatchingStep
	BasicBlock []MatchingStep
}

// Confidence returns the configured confidence of the named step, or 0 if unknown.
func (s MatchingSteps) Confidence(algorithm string) float64 {
	for _, step := range s.Function {
		if step.Algorithm == algorithm {
			return step.Confidence
		}
	}
	for _, step := range s.BasicBlock {
		if step.Algorithm == algorithm {
			return step.Confidence
		}
	}
	return 0
}

// ExporterConfig configures the disassembler used to export databases before diffing.
type ExporterConfig struct {
	// Executable is the disassembler binary. Empty disables exporting.
	Executable string
	// Args are passed before the input path. "{output}" is replaced by the export path.
	Args []string
}

// Config is the resolved application configuration.
type Config struct {
	// Threads is the number of diff workers. Zero means one per CPU.
	Threads int
	// CacheSize bounds each worker's decode cache.
	CacheSize int
	Steps     MatchingSteps
	Exporter  ExporterConfig
}

// DefaultCacheSize is used when the configuration does not bound the decode cache.
const DefaultCacheSize = 1 << 16

// OutputFormat selects a result sink.
type OutputFormat string

const (
	// FormatLog is the human-readable results log.
	FormatLog OutputFormat = "log"
	// FormatBinary is the persisted diff database.
	FormatBinary OutputFormat = "bin"
)

// ParseOutputFormats maps --output-format entries to formats, in canonical order (log before bin).
func ParseOutputFormats(entries []string) ([]OutputFormat, error) {
	var wantLog, wantBin bool
	for _, entry := range entries {
		switch strings.ToUpper(strings.TrimSpace(entry)) {
		case "BIN", "BINARY":
			wantBin = true
		case "LOG":
			wantLog = true
		default:
			return nil, Annotate(ErrInvalidOutputFormat, "format", entry)
		}
	}

	var formats []OutputFormat
	if wantLog {
		formats = append(formats, FormatLog)
	}
	if wantBin {
		formats = append(formats, FormatBinary)
	}
	return formats, nil
}
