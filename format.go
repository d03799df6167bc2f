package main

import (
	"fmt"
	"strings"
)

// formatStatistics renders the counts in wc field order: lines, words,
// then bytes or characters. Bytes win whenever both -c and -m were
// given; that mirrors the reference tool and is not an error. With no
// count flag at all, lines, words and bytes are shown, which is the
// exact layout plain wc prints.
//
// Every numeric field is an 8-wide right-aligned decimal; larger counts
// simply widen the field. File sources get a single space and the path
// as given appended; stdin gets no suffix. No trailing newline is added
// here.
func formatStatistics(stats Statistics, opts Options) string {
	var b strings.Builder

	if opts.Lines {
		fmt.Fprintf(&b, "%8d", stats.LineCount)
	}
	if opts.Words {
		fmt.Fprintf(&b, "%8d", stats.WordCount)
	}
	if opts.Bytes {
		fmt.Fprintf(&b, "%8d", stats.ByteCount)
	} else if opts.Chars {
		fmt.Fprintf(&b, "%8d", stats.CharCount)
	}

	if opts.DefaultMode() {
		fmt.Fprintf(&b, "%8d%8d%8d", stats.LineCount, stats.WordCount, stats.ByteCount)
	}

	if opts.Tokens {
		fmt.Fprintf(&b, "%8d", stats.TokenCount)
	}

	if opts.Source.Kind == SourceFile {
		b.WriteString(" ")
		b.WriteString(opts.Source.Path)
	}

	return b.String()
}
