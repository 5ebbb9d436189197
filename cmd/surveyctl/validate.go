package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the survey declaration for consistency",
	Long: `Validate the survey declaration: field keys and titles are unique,
every enum value is known, preset lists are order-safe, and the UI
structure references exactly the public catalog fields.`,
	Run: func(cmd *cobra.Command, args []string) {
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		survey, err := loadSurvey()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("✗"), err)
			os.Exit(1)
		}
		if err := survey.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("✗"), err)
			os.Exit(1)
		}

		public := len(survey.Catalog.PublicFields())
		fmt.Printf("%s %d fields (%d public), %d structure groups\n",
			green("✓"), len(survey.Catalog.Fields), public, len(survey.Structure))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
