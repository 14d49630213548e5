package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// lexiconCmd prints the effective lexicon
var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Print the effective lexicon as YAML",
	Long: `Print the lexicon after loading, normalization and defaults.

Examples:
  # Show the embedded lexicon
  namecheck lexicon

  # Check a custom file loads and see what it resolves to
  namecheck lexicon --lexicon ./lexicon.yaml`,
	Args: cobra.NoArgs,
	RunE: runLexicon,
}

func runLexicon(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(lex); err != nil {
		return fmt.Errorf("encode lexicon: %w", err)
	}
	return enc.Close()
}
