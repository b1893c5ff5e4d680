package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	goodMain = "#include <stdio.h>\n\nint main(void) {\n    printf(\"hi\\n\");\n    return 0;\n}\n"
	goodMake = "CFLAGS = -Wall\n\nall: main\n\nclean:\n\trm -f main\n"
)

func goodReadme() string {
	body := "# Lesson\n\nThis lesson introduces the structure of a C program and walks through compiling it with make.\n\n"
	body += "```c\nint main(void) { return 0; }\n```\n\nRead the source, run it, then change the message and rebuild to see the effect.\n"
	return body
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// writeCourse lays out one basics lesson; when broken, lesson-02 lacks README.md.
func writeCourse(t *testing.T, broken bool) string {
	t.Helper()
	root := t.TempDir()

	lesson := filepath.Join(root, "basics", "lesson-01-hello")
	writeFixture(t, filepath.Join(lesson, "main.c"), goodMain)
	writeFixture(t, filepath.Join(lesson, "Makefile"), goodMake)
	writeFixture(t, filepath.Join(lesson, "README.md"), goodReadme())

	if broken {
		second := filepath.Join(root, "basics", "lesson-02-vars")
		writeFixture(t, filepath.Join(second, "main.c"), goodMain)
		writeFixture(t, filepath.Join(second, "Makefile"), goodMake)
	}

	writeFixture(t, filepath.Join(root, "test_config.json"),
		`{"test_configuration":{"difficulty_levels":{"basics":{"expected_lessons":1,"topics":["intro"]},"master":{"expected_lessons":6}}}}`)
	return root
}

// runBinary runs the CLI with a scrubbed environment so ambient settings do not leak in.
func runBinary(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinaryPath(t), args...)
	cmd.Dir = dir
	cmd.Env = []string{"PATH=" + os.Getenv("PATH"), "HOME=" + dir}
	output, err := cmd.CombinedOutput()
	return string(output), err
}
