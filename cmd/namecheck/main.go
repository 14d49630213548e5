// Package main implements namecheck, an offline tool for trying lexicons
// against sample input without running the webhook server.
package main

import (
	"os"

	"github.com/hritik3345/LIPA-Name/internal/lexicon"
	"github.com/spf13/cobra"
)

var (
	// lexiconPath overrides the embedded lexicon
	lexiconPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "namecheck",
	Short: "Try name capture offline",
	Long: `namecheck runs the name capture pipeline locally.

It classifies sample answers exactly as the webhook would and prints the
effective lexicon, so lexicon edits can be checked before deployment.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", os.Getenv("LEXICON_FILE"), "lexicon YAML file (default: embedded)")
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func loadLexicon() (*lexicon.Lexicon, error) {
	return lexicon.Resolve(lexiconPath)
}
