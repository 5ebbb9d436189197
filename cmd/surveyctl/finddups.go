package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lesswrong-ru/surveyctl/internal/dedup"
	"github.com/lesswrong-ru/surveyctl/internal/ingest"
	"github.com/lesswrong-ru/surveyctl/internal/report"
	"github.com/lesswrong-ru/surveyctl/internal/storage"
)

var (
	finddupsInput        string
	finddupsMinEqual     int
	finddupsMaxDifferent int
)

var finddupsCmd = &cobra.Command{
	Use:   "finddups",
	Short: "Flag likely duplicate submissions",
	Long: `Score every pair of submissions by field-level agreement on raw
values and print the pairs that look like edits or resubmissions of an
earlier answer. Diagnostic output for manual review only.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		survey, err := loadSurvey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load survey declaration: %v\n", err)
			os.Exit(1)
		}
		if err := survey.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		cfg, err := dedup.ConfigFromEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("min-equal") {
			cfg.MinEqual = finddupsMinEqual
		}
		if cmd.Flags().Changed("max-different") {
			cfg.MaxDifferent = finddupsMaxDifferent
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ds, err := ingest.Load(finddupsInput, survey.Catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load dataset: %v\n", err)
			os.Exit(1)
		}

		// Private fields (timestamp, contact info) are identifying by
		// definition and stay out of the comparison.
		var fields []string
		for _, f := range survey.Catalog.PublicFields() {
			fields = append(fields, f.Key)
		}

		fmt.Printf("Total columns: %d\n", len(fields))
		fmt.Printf("Total rows: %d\n", ds.Len())

		findings := dedup.FindDuplicates(ds.Rows(), fields, "timestamp", cfg)

		cyan := color.New(color.FgCyan).SprintFunc()
		header := fmt.Sprintf("%4s | %4s | %-19s | %-19s | %10s | %10s | %10s | %10s | %10s",
			"i", "j", "timestamp", "timestamp", "equal", "different", "empty_both", "empty_a", "empty_b")
		fmt.Println(cyan(header))
		for range header {
			fmt.Print("-")
		}
		fmt.Println()
		for _, f := range findings {
			fmt.Printf("%4d | %4d | %-19s | %-19s | %10d | %10d | %10d | %10d | %10d\n",
				f.I, f.J, f.StampA, f.StampB,
				f.Score.Equal, f.Score.Different, f.Score.EmptyBoth, f.Score.EmptyA, f.Score.EmptyB)
		}

		if len(findings) == 0 {
			fmt.Println(color.New(color.FgGreen).Sprint("No duplicate candidates found"))
		} else {
			fmt.Printf("%s\n", color.New(color.FgYellow).Sprintf("%d candidate pair(s) flagged for review", len(findings)))
		}

		if archivePath != "" {
			store, err := storage.New(archivePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to open archive: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()

			// Findings hang off a run record; a standalone finddups
			// invocation gets a minimal one.
			run := &report.Report{
				RunID:     uuid.New().String(),
				CreatedAt: time.Now().UTC(),
				Total:     ds.Len(),
			}
			if err := store.SaveRun(ctx, run); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to archive run: %v\n", err)
				os.Exit(1)
			}
			if err := store.SaveFindings(ctx, run.RunID, findings); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to archive findings: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	finddupsCmd.Flags().StringVar(&finddupsInput, "input", "data/data.txt", "raw response CSV path")
	finddupsCmd.Flags().IntVar(&finddupsMinEqual, "min-equal", dedup.DefaultConfig().MinEqual,
		"minimum exactly-agreeing fields to flag a pair")
	finddupsCmd.Flags().IntVar(&finddupsMaxDifferent, "max-different", dedup.DefaultConfig().MaxDifferent,
		"maximum conflicting fields a flagged pair may have")
	rootCmd.AddCommand(finddupsCmd)
}
