package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleStats = Statistics{
	ByteCount: 13,
	LineCount: 3,
	WordCount: 5,
	CharCount: 11,
}

func TestFormatSingleCounts(t *testing.T) {
	src := FileSource("test.txt")

	assert.Equal(t, "       3 test.txt", formatStatistics(sampleStats, Options{Lines: true, Source: src}))
	assert.Equal(t, "       5 test.txt", formatStatistics(sampleStats, Options{Words: true, Source: src}))
	assert.Equal(t, "      13 test.txt", formatStatistics(sampleStats, Options{Bytes: true, Source: src}))
	assert.Equal(t, "      11 test.txt", formatStatistics(sampleStats, Options{Chars: true, Source: src}))
}

func TestFormatFieldOrderIsLinesWordsBytes(t *testing.T) {
	opts := Options{Lines: true, Words: true, Bytes: true, Source: FileSource("test.txt")}
	assert.Equal(t, "       3       5      13 test.txt", formatStatistics(sampleStats, opts))
}

func TestFormatBytesWinOverChars(t *testing.T) {
	opts := Options{Bytes: true, Chars: true, Source: StdinSource()}
	assert.Equal(t, "      13", formatStatistics(sampleStats, opts), "-c takes precedence over -m, never both")

	opts = Options{Lines: true, Words: true, Bytes: true, Chars: true, Source: StdinSource()}
	assert.Equal(t, "       3       5      13", formatStatistics(sampleStats, opts))
}

func TestFormatDefaultMode(t *testing.T) {
	opts := Options{Source: FileSource("test.txt")}
	assert.Equal(t, "       3       5      13 test.txt", formatStatistics(sampleStats, opts))
}

func TestFormatDefaultModeEqualsExplicitLinesWordsBytes(t *testing.T) {
	src := FileSource("test.txt")
	explicit := formatStatistics(sampleStats, Options{Lines: true, Words: true, Bytes: true, Source: src})
	implicit := formatStatistics(sampleStats, Options{Source: src})
	assert.Equal(t, explicit, implicit, "the two code paths must render identically")
}

func TestFormatStdinHasNoNameSuffix(t *testing.T) {
	out := formatStatistics(sampleStats, Options{Lines: true, Source: StdinSource()})
	assert.Equal(t, "       3", out)
}

func TestFormatWideCountsWidenTheField(t *testing.T) {
	stats := Statistics{ByteCount: 123456789}
	out := formatStatistics(stats, Options{Bytes: true, Source: StdinSource()})
	assert.Equal(t, "123456789", out, "counts wider than 8 digits are not truncated")
}

func TestFormatZeroCounts(t *testing.T) {
	out := formatStatistics(Statistics{}, Options{Source: FileSource("empty.txt")})
	assert.Equal(t, "       0       0       0 empty.txt", out)
}

func TestFormatUsesPathAsGiven(t *testing.T) {
	out := formatStatistics(sampleStats, Options{Bytes: true, Source: FileSource("./sub/test.txt")})
	assert.Equal(t, "      13 ./sub/test.txt", out, "the path is not resolved or shortened")
}

func TestFormatTokenFieldComesLast(t *testing.T) {
	stats := sampleStats
	stats.TokenCount = 7

	opts := Options{Words: true, Tokens: true, Source: FileSource("test.txt")}
	assert.Equal(t, "       5       7 test.txt", formatStatistics(stats, opts))

	// Tokens on top of default mode leaves the wc fields untouched.
	opts = Options{Tokens: true, Source: StdinSource()}
	assert.Equal(t, "       3       5      13       7", formatStatistics(stats, opts))
}

func TestFormatNoTrailingNewline(t *testing.T) {
	out := formatStatistics(sampleStats, Options{Lines: true, Source: StdinSource()})
	assert.NotContains(t, out, "\n")
}
