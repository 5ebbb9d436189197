package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lesswrong-ru/surveyctl/internal/ingest"
	"github.com/lesswrong-ru/surveyctl/internal/report"
	"github.com/lesswrong-ru/surveyctl/internal/storage"
)

var (
	extractInput  string
	extractOutput string
	extractFormat string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the pipeline and write the summary document",
	Long: `Load the raw response CSV, run normalization and aggregation over
every public field, and write the summary document (data.js or JSON).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		survey, err := loadSurvey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load survey declaration: %v\n", err)
			os.Exit(1)
		}

		ds, err := ingest.Load(extractInput, survey.Catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load dataset: %v\n", err)
			os.Exit(1)
		}

		rep, err := report.Assemble(survey, ds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		for _, w := range rep.Warnings {
			fmt.Fprintf(os.Stderr, "%s %s\n", yellow("Warning:"), w)
		}

		out, err := os.Create(extractOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create output file: %v\n", err)
			os.Exit(1)
		}
		switch extractFormat {
		case "datajs":
			err = rep.WriteDataJS(out)
		case "json":
			err = rep.WriteJSON(out)
		default:
			err = fmt.Errorf("unknown format %q (want datajs or json)", extractFormat)
		}
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write report: %v\n", err)
			os.Exit(1)
		}

		if archivePath != "" {
			store, err := storage.New(archivePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to open archive: %v\n", err)
				os.Exit(1)
			}
			defer store.Close()
			if err := store.SaveRun(ctx, rep); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to archive run: %v\n", err)
				os.Exit(1)
			}
		}

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("%s %d respondents, %d fields → %s\n",
			green("✓"), rep.Total, len(rep.Columns), extractOutput)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractInput, "input", "data/data.txt", "raw response CSV path")
	extractCmd.Flags().StringVar(&extractOutput, "output", "data.js", "output file path")
	extractCmd.Flags().StringVar(&extractFormat, "format", "datajs", "output format: datajs or json")
	rootCmd.AddCommand(extractCmd)
}
