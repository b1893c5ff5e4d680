package lessonrepo

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/lesson-audit/internal/types"
)

// RequiredFiles must all exist for a lesson to count as complete.
var RequiredFiles = []string{"main.c", "Makefile", "README.md"}

// ExecutablePatterns mark a compiled artifact in a lesson directory.
var ExecutablePatterns = []string{"*.exe", "*.out"}

// IsComplete reports whether every required file exists in the lesson. Content is not inspected.
func IsComplete(lesson types.Lesson) bool {
	_, ok := MissingRequired(lesson)
	return !ok
}

// MissingRequired returns the first required file absent from the lesson, in
// RequiredFiles order.
func MissingRequired(lesson types.Lesson) (string, bool) {
	for _, name := range RequiredFiles {
		if _, err := os.Stat(filepath.Join(lesson.Path, name)); err != nil {
			return name, true
		}
	}
	return "", false
}

// HasExecutable reports whether any entry matches one of ExecutablePatterns.
func HasExecutable(lesson types.Lesson) bool {
	for _, pattern := range ExecutablePatterns {
		if len(Files(lesson.Path, pattern)) > 0 {
			return true
		}
	}
	return false
}

// FileCount returns the number of direct entries in the lesson directory.
func FileCount(lesson types.Lesson) int {
	entries, _ := os.ReadDir(lesson.Path)
	return len(entries)
}

// Files returns the sorted paths of the direct entries of dir whose name matches pattern.
func Files(dir, pattern string) []string {
	entries, _ := os.ReadDir(dir)

	var out []string
	for _, e := range entries {
		if matches(pattern, e.Name()) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out
}

// SourceFiles returns every regular *.c file under dir, recursively, in lexical
// walk order. Subtrees that cannot be read are skipped.
func SourceFiles(dir string) []string {
	var out []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".c") && d.Type().IsRegular() {
			out = append(out, path)
		}
		return nil
	})
	return out
}
