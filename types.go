package main

// SourceKind discriminates the two possible input origins of a run.
type SourceKind int

const (
	// SourceStdin reads the standard input stream to EOF.
	SourceStdin SourceKind = iota
	// SourceFile reads a single named file from disk.
	SourceFile
)

// Source identifies where the input bytes come from: exactly one of a
// named file or standard input.
type Source struct {
	Kind SourceKind
	Path string // set only for SourceFile, kept exactly as given on the command line
}

// FileSource returns a Source that reads the named file.
func FileSource(path string) Source {
	return Source{Kind: SourceFile, Path: path}
}

// StdinSource returns a Source that drains standard input.
func StdinSource() Source {
	return Source{Kind: SourceStdin}
}

// Options is the resolved flag set for a single run. It is constructed
// once from the command line and never mutated afterwards. Any
// combination of count flags is valid, including none or all of them.
type Options struct {
	Lines  bool
	Words  bool
	Bytes  bool
	Chars  bool
	Tokens bool
	Source Source
}

// DefaultMode reports whether no count flag was requested. Plain wc then
// falls back to showing lines, words and bytes together. The token flag
// is an add-on and does not affect this.
func (o Options) DefaultMode() bool {
	return !o.Bytes && !o.Lines && !o.Words && !o.Chars
}

// Statistics holds the counts computed from one input buffer. Each field
// is derived independently from the same bytes; none is computed from
// another.
type Statistics struct {
	ByteCount  uint64
	LineCount  uint64
	WordCount  uint64
	CharCount  uint64
	TokenCount uint64 // populated only when token counting is enabled
}
