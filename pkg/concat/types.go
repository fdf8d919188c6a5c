package concat

// Arguments holds the command-line arguments for a concatenation run.
type Arguments struct {
	RootDirectory   string   // The directory tree to scan
	OutputDirectory string   // Where the numbered output files are written
	NumberOfFiles   int      // How many output files to produce
	IgnoreEntries   []string // Names or glob patterns excluded from collection
	Extensions      []string // File extensions to collect; DefaultExtensions when empty
}

// FileContent holds one source file's formatted content, ready to be
// appended to an output file.
type FileContent struct {
	Path    string // Root-relative path of the source file
	Content string // Header plus file content
}

// DefaultExtensions is the recognized extension set used when no
// --extensions flag is given.
var DefaultExtensions = []string{
	".js", ".jsx", ".css", ".html", ".json", ".md",
	".mdx", ".txt", ".py", ".sh", ".yaml", ".yml",
}
