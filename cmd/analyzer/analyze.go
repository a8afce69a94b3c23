package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ats"
	"github.com/jonathan/resume-analyzer/internal/ingest"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.txt>",
	Short: "Parse a resume and score it for ATS friendliness",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the full result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	lex := lexicon.Default()
	resume := analyzer.NewParser(lex).Parse(ingest.Normalize(string(content)))
	breakdown, degraded := ats.NewScorer(lex, nil).Score(resume)

	if analyzeJSON {
		out := struct {
			Resume    any  `json:"resume"`
			Breakdown any  `json:"breakdown"`
			Degraded  bool `json:"degraded,omitempty"`
		}{resume, breakdown, degraded}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintResume(&resume)
	}
	printer.PrintBreakdown(breakdown)
	if degraded {
		fmt.Fprintln(os.Stderr, "warning: scoring degraded, breakdown is all zeros")
	}
	return nil
}
