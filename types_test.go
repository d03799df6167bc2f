package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMode(t *testing.T) {
	assert.True(t, Options{}.DefaultMode())
	assert.False(t, Options{Lines: true}.DefaultMode())
	assert.False(t, Options{Words: true}.DefaultMode())
	assert.False(t, Options{Bytes: true}.DefaultMode())
	assert.False(t, Options{Chars: true}.DefaultMode())
	assert.False(t, Options{Lines: true, Words: true, Bytes: true, Chars: true}.DefaultMode())
}

func TestDefaultModeIgnoresTokenFlag(t *testing.T) {
	assert.True(t, Options{Tokens: true}.DefaultMode(), "--tokens alone still shows the default counts")
}

func TestSourceConstructors(t *testing.T) {
	f := FileSource("notes.txt")
	assert.Equal(t, SourceFile, f.Kind)
	assert.Equal(t, "notes.txt", f.Path)

	s := StdinSource()
	assert.Equal(t, SourceStdin, s.Kind)
	assert.Empty(t, s.Path)
}
