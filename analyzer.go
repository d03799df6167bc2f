package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// stdin is swapped out by tests; everything else reads the real stream.
var stdin io.Reader = os.Stdin

var errNotRegularFile = errors.New("not a regular file")

// byteCount returns the size of the buffer in bytes.
func byteCount(data []byte) uint64 {
	return uint64(len(data))
}

// lineCount counts newline bytes, matching Unix wc: content after the
// last newline is not an extra line. No decoding is involved.
func lineCount(data []byte) uint64 {
	return uint64(bytes.Count(data, []byte{'\n'}))
}

// isSplitSpace is the locale-independent ASCII whitespace class used for
// word splitting.
func isSplitSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// wordCount counts maximal runs of non-whitespace bytes. Malformed UTF-8
// decodes to the replacement rune, which is not whitespace, so invalid
// bytes deterministically stay attached to the surrounding word.
func wordCount(data []byte) uint64 {
	return uint64(len(bytes.FieldsFunc(data, isSplitSpace)))
}

// charCount counts Unicode code points, not bytes or UTF-16 units. Each
// malformed byte decodes as one replacement rune and counts as one code
// point.
func charCount(data []byte) uint64 {
	return uint64(utf8.RuneCount(data))
}

// computeStatistics derives all four counts from one buffer.
func computeStatistics(data []byte) Statistics {
	return Statistics{
		ByteCount: byteCount(data),
		LineCount: lineCount(data),
		WordCount: wordCount(data),
		CharCount: charCount(data),
	}
}

// readSource drains the input source fully. File handles are closed
// before it returns, on success and failure alike.
func readSource(src Source) ([]byte, error) {
	switch src.Kind {
	case SourceFile:
		info, err := os.Stat(src.Path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", src.Path, err)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: %w", src.Path, errNotRegularFile)
		}
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", src.Path, err)
		}
		return data, nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("cannot read standard input: %w", err)
		}
		return data, nil
	}
}

// fileByteCount returns the size of a regular file from its metadata,
// without loading the body.
func fileByteCount(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: %w", path, errNotRegularFile)
	}
	return uint64(info.Size()), nil
}

// byteCountOnly reports whether the run needs nothing but the byte count,
// in which case a file source can be answered from metadata alone.
func byteCountOnly(opts Options) bool {
	return opts.Bytes && !opts.Lines && !opts.Words && !opts.Chars && !opts.Tokens
}

// Analyze reads the input named by opts, computes the requested counts
// and returns the formatted result line, without a trailing newline.
// The tokenizer may be nil when token counting is disabled. I/O failures
// are returned as-is; they are never retried and there is no partial
// result.
func Analyze(opts Options, tk Tokenizer) (string, error) {
	if byteCountOnly(opts) && opts.Source.Kind == SourceFile {
		size, err := fileByteCount(opts.Source.Path)
		if err != nil {
			return "", err
		}
		return formatStatistics(Statistics{ByteCount: size}, opts), nil
	}

	data, err := readSource(opts.Source)
	if err != nil {
		return "", err
	}

	stats := computeStatistics(data)
	if opts.Tokens && tk != nil {
		stats.TokenCount = uint64(tk.CountTokens(string(data)))
	}
	return formatStatistics(stats, opts), nil
}
