package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/lesson-audit/internal/validation"
	schemafiles "github.com/jonathan/lesson-audit/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate lesson files against code-quality rules",
	Long:  "Checks every lesson for required files, then validates C sources, headers, Makefiles and READMEs. Exits with status 1 when any issue is found; warnings never fail the run.",
	RunE:  runValidate,
}

var validateOutput string

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to write the validation report JSON (optional)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	env, err := newRunEnv(os.Stdout)
	if err != nil {
		return err
	}
	defer env.log.Sync()

	env.printer.PrintValidationHeader()

	v := validation.New(validation.Options{Observer: env.printer, Logger: env.log})
	result := v.ValidateTree(env.walk())
	report := result.Report(env.root, uuid.NewString(), time.Now())

	env.printer.PrintValidationSummary(report)

	if validateOutput != "" {
		if err := validation.WriteReport(validateOutput, report); err != nil {
			return err
		}
		checkSchema(schemafiles.ValidationReport, validateOutput, "validation report")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", validateOutput)
	}

	if !report.Success {
		// Return error to indicate issues were found (exit code 1)
		return fmt.Errorf("validation found %d issue(s)", len(report.Issues))
	}
	return nil
}
