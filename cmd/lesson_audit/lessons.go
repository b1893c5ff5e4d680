package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/lesson-audit/internal/lessonrepo"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lessons the audits will see",
	Long:  "Prints each configured level in priority order with its lesson directories, marking incomplete lessons with the first missing required file.",
	RunE:  runLessons,
}

func init() {
	rootCmd.AddCommand(lessonsCmd)
}

func runLessons(_ *cobra.Command, _ []string) error {
	env, err := newRunEnv(os.Stdout)
	if err != nil {
		return err
	}
	defer env.log.Sync()

	tree := env.walk()
	for _, lvl := range tree.Levels {
		_, _ = fmt.Fprintf(os.Stdout, "%s (%d/%d expected)\n", strings.ToUpper(lvl.Name), len(lvl.Lessons), lvl.ExpectedLessons)
		for _, lesson := range lvl.Lessons {
			if missing, ok := lessonrepo.MissingRequired(lesson); ok {
				_, _ = fmt.Fprintf(os.Stdout, "  %s (missing %s)\n", lesson.Name, missing)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "  %s\n", lesson.Name)
		}
	}
	for _, name := range tree.Missing {
		_, _ = fmt.Fprintf(os.Stdout, "%s: directory not found\n", strings.ToUpper(name))
	}
	return nil
}
