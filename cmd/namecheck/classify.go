package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hritik3345/LIPA-Name/internal/capture"
	"github.com/hritik3345/LIPA-Name/internal/sanitize"
	"github.com/hritik3345/LIPA-Name/internal/webhook"
	"github.com/spf13/cobra"
)

var (
	// sanitizeInput mirrors SANITIZE_INPUT on the server
	sanitizeInput bool
	// explain prints the decision alongside the response
	explain bool
)

func init() {
	classifyCmd.Flags().BoolVar(&sanitizeInput, "sanitize", true, "strip markup and normalize text first")
	classifyCmd.Flags().BoolVar(&explain, "explain", false, "print category and rejection reason to stderr")
}

// classifyCmd runs one answer through the pipeline
var classifyCmd = &cobra.Command{
	Use:   "classify [text|-]",
	Short: "Print the webhook response for an answer",
	Long: `Run an answer through classification, extraction, validation and
normalization, and print the webhook JSON the server would return.

Examples:
  # Classify an answer
  namecheck classify "my name is Asha"

  # Read the answer from stdin
  echo "I'd rather not say" | namecheck classify -

  # Try a custom lexicon
  namecheck classify --lexicon ./lexicon.yaml "call me Ravi"`,
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	text, err := readAnswer(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	engine, err := capture.New(lex)
	if err != nil {
		return err
	}

	if sanitizeInput {
		text = sanitize.Text(text)
	}
	res, out := engine.Process(text)

	if explain {
		fmt.Fprintf(cmd.ErrOrStderr(), "category=%s reason=%s candidate=%q\n",
			res.Category, capture.Reason(res.Err), res.Candidate)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(webhook.NewResponse(out)); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

// readAnswer joins args into one answer, or reads stdin for "-" or no args.
func readAnswer(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(io.LimitReader(stdin, 1<<16))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
