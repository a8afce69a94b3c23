package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ingest"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/match"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	matchLimit int
	matchJSON  bool
)

var matchCmd = &cobra.Command{
	Use:   "match <resume.txt> <jobs.json>",
	Short: "Rank job postings by fit against a resume",
	Long:  `Rank a JSON array of job postings by how well they fit the given resume.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().IntVar(&matchLimit, "limit", match.DefaultLimit, "Maximum matches to return")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Emit the full result as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	resumeContent, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobsContent, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []types.JobPosting
	if err := json.Unmarshal(jobsContent, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	for i := range jobs {
		jobs[i].Description = ingest.Normalize(jobs[i].Description)
	}

	lex := lexicon.Default()
	resume := analyzer.NewParser(lex).Parse(ingest.Normalize(string(resumeContent)))
	ranker := match.NewRanker(match.NewMatcher(lex, nil))
	matches := ranker.Rank(cmd.Context(), resume, jobs, matchLimit)

	if matchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintResume(&resume)
	}
	printer.PrintMatches(matches)
	return nil
}
