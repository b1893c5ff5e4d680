// Package validation applies heuristic code-quality rules to the files of a lesson tree.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/jonathan/lesson-audit/internal/lessonrepo"
	"github.com/jonathan/lesson-audit/internal/logger"
	"github.com/jonathan/lesson-audit/internal/types"
)

// Observer receives walk progress as the validator moves through the tree.
type Observer interface {
	LevelStarted(level types.Level)
	LessonStarted(lesson types.Lesson)
}

// Options configures a Validator. Both fields are optional.
type Options struct {
	Observer Observer
	Logger   *logger.Logger
}

// Validator walks a lesson tree and accumulates findings into a Result.
type Validator struct {
	observer Observer
	log      *logger.Logger
}

// RuleFunc checks the content of one file and returns its findings.
type RuleFunc func(path, content string) []types.Finding

// New returns a Validator.
func New(opts Options) *Validator {
	return &Validator{observer: opts.Observer, log: logger.OrNop(opts.Logger)}
}

// ValidateTree validates every lesson of every present level, in order.
func (v *Validator) ValidateTree(tree *lessonrepo.Tree) *Result {
	res := &Result{}
	for _, lvl := range tree.Levels {
		if v.observer != nil {
			v.observer.LevelStarted(lvl)
		}
		for _, lesson := range lvl.Lessons {
			v.ValidateLesson(res, lesson)
		}
	}
	v.log.Debug("validation finished",
		"files", res.TotalFiles,
		"passed", res.PassedFiles,
		"issues", len(res.Issues),
		"warnings", len(res.Warnings))
	return res
}

// ValidateLesson validates one lesson into res. A lesson missing a required
// file records a single issue and nothing else is checked.
func (v *Validator) ValidateLesson(res *Result, lesson types.Lesson) {
	if v.observer != nil {
		v.observer.LessonStarted(lesson)
	}

	if missing, ok := lessonrepo.MissingRequired(lesson); ok {
		res.Issues = append(res.Issues, issue(lesson.Path, fmt.Sprintf("Missing required file %s", missing)))
		res.InvalidLessons = append(res.InvalidLessons, lesson.Path)
		return
	}

	for _, path := range lessonrepo.Files(lesson.Path, "*.c") {
		v.ValidateFile(res, path, CheckCSource)
	}
	for _, path := range lessonrepo.Files(lesson.Path, "*.h") {
		v.ValidateFile(res, path, CheckHeader)
	}
	v.ValidateFile(res, filepath.Join(lesson.Path, "Makefile"), CheckMakefile)
	v.ValidateFile(res, filepath.Join(lesson.Path, "README.md"), CheckReadme)
}

// ValidateFile reads path and applies rule to it. An unreadable file records
// one issue and counts as validated but not passed.
func (v *Validator) ValidateFile(res *Result, path string, rule RuleFunc) {
	content, err := readText(path)
	if err != nil {
		v.log.Debug("cannot read file", "path", path, "error", err)
		res.add([]types.Finding{issue(path, fmt.Sprintf("Cannot read file - %v", err))})
		return
	}
	res.add(rule(path, content))
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &FileReadError{Message: "content is not valid UTF-8"}
	}
	return string(data), nil
}

func issue(path, message string) types.Finding {
	return types.Finding{Path: path, Message: message, Severity: types.SeverityIssue}
}

func warning(path, message string) types.Finding {
	return types.Finding{Path: path, Message: message, Severity: types.SeverityWarning}
}
