package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTokenizerRejectsUnknownType(t *testing.T) {
	_, err := newTokenizer("sentencepiece", "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported tokenizer type")
}

func TestNewHFCounterMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "tokenizer.json")
	_, err := newTokenizer("huggingface", "", missing)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestZeroValueCountersReturnZero(t *testing.T) {
	assert.Equal(t, 0, (&tiktokenCounter{}).CountTokens("some text"))
	assert.Equal(t, 0, (&hfCounter{}).CountTokens("some text"))
}
