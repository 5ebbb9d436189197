package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lesswrong-ru/surveyctl/internal/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived pipeline runs",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if archivePath == "" {
			fmt.Fprintln(os.Stderr, "Error: --archive-db is required")
			os.Exit(1)
		}
		store, err := storage.New(archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open archive: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		runs, err := store.ListRuns(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to list runs: %v\n", err)
			os.Exit(1)
		}

		gray := color.New(color.FgHiBlack).SprintFunc()
		if len(runs) == 0 {
			fmt.Println(gray("No archived runs"))
			return
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  %4d respondents  %3d fields  %3d dup findings\n",
				r.RunID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Total, r.Fields, r.Findings)
		}
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
