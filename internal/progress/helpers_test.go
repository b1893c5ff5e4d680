package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/lesson-audit/internal/config"
	"github.com/jonathan/lesson-audit/internal/lessonrepo"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// addLesson creates root/level/name; complete lessons get all three required files.
func addLesson(t *testing.T, root, level, name string, complete bool) string {
	t.Helper()
	dir := filepath.Join(root, level, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	writeFile(t, filepath.Join(dir, "main.c"), "#include <stdio.h>\n\nint main(void) {\n    return 0;\n}\n")
	if complete {
		writeFile(t, filepath.Join(dir, "Makefile"), "all:\n\tgcc main.c\n")
		writeFile(t, filepath.Join(dir, "README.md"), "# Lesson\n")
	}
	return dir
}

func walk(root string, levels ...config.Level) *lessonrepo.Tree {
	return lessonrepo.Walk(root, levels)
}

func level(name string, expected int) config.Level {
	return config.Level{Name: name, ExpectedLessons: expected}
}
