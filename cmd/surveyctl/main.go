// surveyctl runs the LessWrong.ru community survey pipeline: it turns
// the raw response spreadsheet into an aggregated, anonymized summary
// document and flags likely duplicate submissions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lesswrong-ru/surveyctl/internal/schema"
)

var (
	schemaPath  string
	archivePath string
)

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Survey aggregation and anonymization pipeline",
	Long: `surveyctl ingests raw survey responses and produces an aggregated,
anonymized, browsable summary: per-question frequency tables with
singleton suppression and privacy bucketing, plus a diagnostic report
of likely duplicate submissions.`,
}

// loadSurvey returns the survey declaration to run against: the
// --schema file if given, the built-in 2018 declaration otherwise.
func loadSurvey() (*schema.Survey, error) {
	if schemaPath == "" {
		return schema.Builtin(), nil
	}
	return schema.Load(schemaPath)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "",
		"survey declaration YAML (default: built-in 2018 survey)")
	rootCmd.PersistentFlags().StringVar(&archivePath, "archive-db", "",
		"SQLite run archive path (empty disables archiving)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
