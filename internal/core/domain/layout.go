package domain

const (
	// ExportExtension is the file extension of exported binaries.
	ExportExtension = ".BinExport"

	// DatabaseExtension is the file extension of the persisted diff database.
	DatabaseExtension = ".BinDiff"

	// ResultsLogExtension is the file extension of the human-readable results log.
	ResultsLogExtension = ".results"

	// PairSeparator joins the primary and secondary names in output filenames.
	PairSeparator = "_vs_"

	// ConfigFileName is the name of the optional per-user configuration file.
	ConfigFileName = "differ.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DisassemblerExtensions lists the database extensions that are exported before diffing.
var DisassemblerExtensions = []string{".idb", ".i64"}
