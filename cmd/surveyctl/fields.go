package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the catalog fields",
	Run: func(cmd *cobra.Command, args []string) {
		survey, err := loadSurvey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load survey declaration: %v\n", err)
			os.Exit(1)
		}

		gray := color.New(color.FgHiBlack).SprintFunc()
		for _, f := range survey.Catalog.Fields {
			flags := ""
			if f.Private {
				flags += " private"
			}
			if f.ExtractOther {
				flags += " extract_other"
			}
			if f.Bucket != "" {
				flags += fmt.Sprintf(" bucket=%s", f.Bucket)
			}
			fmt.Printf("%-22s %-4s %-9s%s\n", f.Key, f.Type, f.Sort, gray(flags))
		}
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
