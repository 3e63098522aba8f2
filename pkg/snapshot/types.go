package snapshot

// Arguments holds the configuration options for one snapshot run.
type Arguments struct {
	InputDir       string   // Directory to convert.
	OutputDir      string   // Optional directory for the output file, created if absent.
	ToStdout       bool     // Write the document to stdout instead of a file.
	IgnorePatterns []string // Extra tree-and-content ignore patterns from the command line.
}

// FileContent is one content section of the rendered document.
type FileContent struct {
	Path    string // Root-relative, slash-separated file path.
	Payload string // File content, byte-widened for binary files.
	Binary  bool   // True when the payload went through the binary encoding.
}

// Well-known file names and prefixes.
const (
	// OutputFilePrefix starts every generated document name. Files carrying
	// it are treated as prior output and never re-captured.
	OutputFilePrefix = "repo-to-text_"

	// SettingsFileName is the per-repository settings document.
	SettingsFileName = ".repo-to-text-settings.yaml"

	// GitignoreFileName is the VCS ignore file honored by default.
	GitignoreFileName = ".gitignore"

	// gitMetadataDir is the VCS metadata directory, always ignored.
	gitMetadataDir = ".git"
)
