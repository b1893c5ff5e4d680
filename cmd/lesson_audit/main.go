// Package main provides the entry point for the lesson_audit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "lesson_audit",
	Short:         "Progress and code-quality audits for a C lesson course",
	Long:          "lesson_audit walks a C programming course laid out as <level>/lesson-*/ directories, reports completion progress and validates lesson files against heuristic quality rules.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootDir    string
	configPath string
	verbose    bool
	colorize   bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "Course root directory (env LESSON_AUDIT_ROOT, default \".\")")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Level configuration file, JSON or YAML (env LESSON_AUDIT_CONFIG, default <root>/test_config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&colorize, "color", false, "Style console output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
