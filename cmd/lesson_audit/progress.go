package main

import (
	"os"

	"github.com/jonathan/lesson-audit/internal/progress"
	schemafiles "github.com/jonathan/lesson-audit/schemas"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Report lesson completion progress",
	Long:  "Walks every configured level, prints completion, per-lesson status, code-quality metrics and learning recommendations, then exports a timestamped JSON snapshot.",
	RunE:  runProgress,
}

var (
	progressOutDir   string
	progressNoExport bool
)

func init() {
	progressCmd.Flags().StringVarP(&progressOutDir, "out-dir", "o", ".", "Directory for the progress_report_<timestamp>.json snapshot")
	progressCmd.Flags().BoolVar(&progressNoExport, "no-export", false, "Print the report without writing a snapshot")

	rootCmd.AddCommand(progressCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
	env, err := newRunEnv(os.Stdout)
	if err != nil {
		return err
	}
	defer env.log.Sync()

	report := progress.NewAnalyzer(env.log).Analyze(env.walk())
	env.printer.PrintProgressReport(report)

	if progressNoExport {
		return nil
	}

	// Export failures are reported and the run still succeeds
	path, err := progress.Export(report, progressOutDir)
	env.printer.PrintExportResult(path, err)
	if err != nil {
		env.log.Debug("snapshot export failed", "dir", progressOutDir, "error", err)
		return nil
	}

	checkSchema(schemafiles.ProgressReport, path, "progress snapshot")
	return nil
}
