package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Count selection
	countLines bool
	countWords bool
	countBytes bool
	countChars bool

	// Token counting
	countTokens    bool
	tokenizerType  string
	tokenizerModel string
	tokenizerFile  string

	// Output
	copyToClipboard bool
)

// version is the application version, set via ldflags.
var version string = "dev" // Default for local builds

var rootCmd = &cobra.Command{
	Use:   "gowc [FILE]",
	Short: "gowc counts lines, words, bytes and characters, like Unix wc.",
	Long: `gowc reads one file, or standard input when no file is given, and prints
line, word, byte and character counts in the classic wc layout. An LLM
token count can be added with --tokens.`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := Options{
			Lines:  countLines,
			Words:  countWords,
			Bytes:  countBytes,
			Chars:  countChars,
			Tokens: countTokens,
			Source: StdinSource(),
		}
		if len(args) == 1 {
			opts.Source = FileSource(args[0])
		}

		// Tokenizer failures only disable the extra column; the counts
		// the user asked for are still produced.
		var tk Tokenizer
		if opts.Tokens {
			var err error
			tk, err = newTokenizer(tokenizerType, tokenizerModel, tokenizerFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: token counting disabled: %v\n", err)
				opts.Tokens = false
			} else {
				defer tk.Close()
			}
		}

		result, err := Analyze(opts, tk)
		if err != nil {
			return err
		}

		if copyToClipboard {
			if err := clipboard.WriteAll(result); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: clipboard write failed: %v\n", err)
				fmt.Println(result)
				return nil
			}
			fmt.Fprintln(os.Stderr, "Result copied to clipboard.")
			return nil
		}
		fmt.Println(result)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVarP(&countBytes, "bytes", "c", false, "Count bytes")
	rootCmd.Flags().BoolVarP(&countLines, "lines", "l", false, "Count newlines")
	rootCmd.Flags().BoolVarP(&countWords, "words", "w", false, "Count words")
	rootCmd.Flags().BoolVarP(&countChars, "chars", "m", false, "Count characters (Unicode code points)")

	rootCmd.Flags().BoolVarP(&countTokens, "tokens", "t", false, "Also count LLM tokens")
	viper.BindPFlag("tokens", rootCmd.Flags().Lookup("tokens"))
	rootCmd.Flags().StringVar(&tokenizerType, "tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	viper.BindPFlag("tokenizer", rootCmd.Flags().Lookup("tokenizer"))
	rootCmd.Flags().StringVar(&tokenizerModel, "model", "", "Model name for the tokenizer (e.g. gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	rootCmd.Flags().StringVar(&tokenizerFile, "tokenizer-file", "", "Path to a local tokenizer file")
	viper.BindPFlag("tokenizer_file", rootCmd.Flags().Lookup("tokenizer-file"))

	rootCmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the result to the clipboard instead of printing it")
	viper.BindPFlag("copy", rootCmd.Flags().Lookup("copy"))

	viper.SetDefault("tokens", false)
	viper.SetDefault("tokenizer", "tiktoken")
	viper.SetDefault("model", "")
	viper.SetDefault("tokenizer_file", "")
	viper.SetDefault("copy", false)
}

// initConfig reads the config file and GOWC_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "gowc"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GOWC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: could not read config file: %v\n", err)
		}
	}

	// Config and env values apply only where the flag was not given on
	// the command line, so precedence stays default < config < env < flag.
	if !rootCmd.Flags().Changed("tokens") {
		countTokens = viper.GetBool("tokens")
	}
	if !rootCmd.Flags().Changed("tokenizer") {
		tokenizerType = viper.GetString("tokenizer")
	}
	if !rootCmd.Flags().Changed("model") {
		tokenizerModel = viper.GetString("model")
	}
	if !rootCmd.Flags().Changed("tokenizer-file") {
		tokenizerFile = viper.GetString("tokenizer_file")
	}
	if !rootCmd.Flags().Changed("copy") {
		copyToClipboard = viper.GetBool("copy")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
