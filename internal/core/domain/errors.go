package domain

import "go.trai.ch/zerr"

var (
	// ErrFilenameTooLong is returned when an output filename cannot be shortened to fit the length budget.
	ErrFilenameTooLong = zerr.New("cannot create a valid filename, choose shorter input names/directories")

	// ErrResourceExhausted is returned by collaborators that ran out of memory or another bounded resource.
	ErrResourceExhausted = zerr.New("resource exhausted")

	// ErrPairPanicked is returned when a collaborator panics while a pair is being processed.
	ErrPairPanicked = zerr.New("unexpected failure")

	// ErrReadFailed is returned when an export cannot be read.
	ErrReadFailed = zerr.New("failed to read export")

	// ErrParseFailed is returned when an export cannot be parsed.
	ErrParseFailed = zerr.New("failed to parse export")

	// ErrDiffFailed is returned when the diff engine fails for a pair.
	ErrDiffFailed = zerr.New("failed to diff pair")

	// ErrSinkWriteFailed is returned when a result sink fails to persist a diff result.
	ErrSinkWriteFailed = zerr.New("failed to write results")

	// ErrInputDirectoryInvalid is returned when the batch input path is missing or not a directory.
	ErrInputDirectoryInvalid = zerr.New("input path must be an existing directory")

	// ErrOutputDirectoryInvalid is returned when the output path is not a writable directory.
	ErrOutputDirectoryInvalid = zerr.New("output parameter (--output-dir) must be a writable directory")

	// ErrInvalidInputs is returned when the primary or secondary inputs do not point to files or directories.
	ErrInvalidInputs = zerr.New("invalid inputs, --primary and --secondary must point to valid files/directories")

	// ErrMissingPrimary is returned when no primary input was given.
	ErrMissingPrimary = zerr.New("need primary input (--primary)")

	// ErrExtraArguments is returned when more positional arguments than expected were given.
	ErrExtraArguments = zerr.New("extra arguments on command line")

	// ErrNoExports is returned when the batch input directory contains nothing to diff.
	ErrNoExports = zerr.New("no exported binaries found")

	// ErrListFailed is returned when a directory cannot be listed.
	ErrListFailed = zerr.New("error listing files")

	// ErrInvalidOutputFormat is returned for unknown --output-format entries.
	ErrInvalidOutputFormat = zerr.New("invalid output format")

	// ErrNoMatchingSteps is returned when the configuration yields no usable matching steps.
	ErrNoMatchingSteps = zerr.New("config file invalid: no usable matching steps")

	// ErrInvalidConfidence is returned when a matching step has a confidence outside [0, 1].
	ErrInvalidConfidence = zerr.New("matching step confidence must be between 0 and 1")

	// ErrInvalidThreads is returned when the configured worker count is negative.
	ErrInvalidThreads = zerr.New("thread count must not be negative")

	// ErrInvalidCacheSize is returned when the configured decode cache size is negative.
	ErrInvalidCacheSize = zerr.New("cache size must not be negative")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreCreateFailed is returned when the result database directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create result directory")

	// ErrStoreMarshalFailed is returned when a diff result cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal diff result")

	// ErrStoreWriteFailed is returned when a diff result cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write diff result")

	// ErrExportFailed is returned when the disassembler fails to export an input.
	ErrExportFailed = zerr.New("failed to export database")

	// ErrExporterNotConfigured is returned when inputs need exporting but no disassembler is configured.
	ErrExporterNotConfigured = zerr.New("no disassembler executable configured for export")

	// ErrPairFailed is returned in single-pair mode when the pair could not be diffed.
	// The failure itself has already been reported.
	ErrPairFailed = zerr.New("pair could not be diffed")
)

// Annotate attaches a metadata entry to a sentinel. The result still matches
// the sentinel with errors.Is and renders the sentinel's message.
func Annotate(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
