package main

import (
	"fmt"
	"os"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer counts LLM tokens in a chunk of text.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const (
	defaultTiktokenModel = "gpt-4o"
	defaultHFModel       = "gpt2"
)

// newTokenizer builds the tokenizer selected by the --tokenizer flags.
func newTokenizer(kind, model, file string) (Tokenizer, error) {
	switch strings.ToLower(kind) {
	case "tiktoken":
		return newTiktokenCounter(model)
	case "huggingface":
		return newHFCounter(model, file)
	default:
		return nil, fmt.Errorf("unsupported tokenizer type %q (use tiktoken or huggingface)", kind)
	}
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func newTiktokenCounter(model string) (Tokenizer, error) {
	if model == "" {
		model = defaultTiktokenModel
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tiktoken model %q not found, falling back to %s: %v\n", model, defaultTiktokenModel, err)
		enc, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("tiktoken encoding for %s: %w", defaultTiktokenModel, err)
		}
	}
	return &tiktokenCounter{enc: enc}, nil
}

func (c *tiktokenCounter) CountTokens(text string) int {
	if c.enc == nil {
		return 0
	}
	return len(c.enc.EncodeOrdinary(text))
}

func (c *tiktokenCounter) Close() {}

type hfCounter struct {
	tk *hf.Tokenizer
}

// newHFCounter loads a HuggingFace tokenizer, from a local file when one
// is given, otherwise from the Hub cache (which may download files).
func newHFCounter(model, file string) (Tokenizer, error) {
	if file == "" {
		if model == "" {
			model = defaultHFModel
		}
		cached, err := hf.CachedPath(model, "tokenizer.json")
		if err != nil {
			return nil, fmt.Errorf("fetch tokenizer for model %s: %w", model, err)
		}
		file = cached
	}
	tk, err := pretrained.FromFile(file)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer from %s: %w", file, err)
	}
	return &hfCounter{tk: tk}, nil
}

func (c *hfCounter) CountTokens(text string) int {
	if c.tk == nil {
		return 0
	}
	en, err := c.tk.EncodeSingle(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tokenizer failed to encode input: %v\n", err)
		return 0
	}
	return len(en.Tokens)
}

func (c *hfCounter) Close() {}
