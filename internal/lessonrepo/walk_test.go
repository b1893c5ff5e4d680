package lessonrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/lesson-audit/internal/config"
	"github.com/jonathan/lesson-audit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func completeLesson(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "main.c"), "#include <stdio.h>\n")
	writeFile(t, filepath.Join(dir, "Makefile"), "all:\n")
	writeFile(t, filepath.Join(dir, "README.md"), "# Lesson\n")
}

func levels(names ...string) []config.Level {
	out := make([]config.Level, 0, len(names))
	for _, n := range names {
		out = append(out, config.Level{Name: n, ExpectedLessons: 6})
	}
	return out
}

func TestWalk_OrdersLessonsByName(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"lesson-03-operators", "lesson-01-intro", "lesson-02-types"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "basics", name), 0755))
	}

	tree := Walk(root, levels("basics"))
	require.Len(t, tree.Levels, 1)
	assert.Empty(t, tree.Missing)

	lvl := tree.Levels[0]
	assert.Equal(t, "basics", lvl.Name)
	assert.Equal(t, 6, lvl.ExpectedLessons)
	require.Len(t, lvl.Lessons, 3)
	assert.Equal(t, "lesson-01-intro", lvl.Lessons[0].Name)
	assert.Equal(t, "lesson-02-types", lvl.Lessons[1].Name)
	assert.Equal(t, "lesson-03-operators", lvl.Lessons[2].Name)
	assert.Equal(t, "basics", lvl.Lessons[0].Level)
	assert.Equal(t, filepath.Join(root, "basics", "lesson-01-intro"), lvl.Lessons[0].Path)
}

func TestWalk_SkipsMissingLevels(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pro", "lesson-01-structs"), 0755))

	tree := Walk(root, levels("basics", "pro", "master"))
	require.Len(t, tree.Levels, 1)
	assert.Equal(t, "pro", tree.Levels[0].Name)
	assert.Equal(t, []string{"basics", "master"}, tree.Missing)

	_, ok := tree.Level("basics")
	assert.False(t, ok)
	pro, ok := tree.Level("pro")
	assert.True(t, ok)
	assert.Len(t, pro.Lessons, 1)
}

func TestWalk_KeepsConfiguredOrder(t *testing.T) {
	root := t.TempDir()
	for _, lvl := range []string{"basics", "master", "pro"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, lvl), 0755))
	}

	tree := Walk(root, levels("master", "basics", "pro"))
	var names []string
	for _, l := range tree.Levels {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"master", "basics", "pro"}, names)
}

func TestWalk_IgnoresNonLessonEntries(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "basics", "lesson-01-intro"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "basics", "notes"), 0755))
	writeFile(t, filepath.Join(root, "basics", "lesson-02-draft.txt"), "not a directory")

	tree := Walk(root, levels("basics"))
	require.Len(t, tree.Levels, 1)
	require.Len(t, tree.Levels[0].Lessons, 1)
	assert.Equal(t, "lesson-01-intro", tree.Levels[0].Lessons[0].Name)
}

func TestWalk_LevelIsAFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "basics"), "")

	tree := Walk(root, levels("basics"))
	assert.Empty(t, tree.Levels)
	assert.Equal(t, []string{"basics"}, tree.Missing)
}

func TestWalk_EmptyLevel(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "intermediate"), 0755))

	tree := Walk(root, levels("intermediate"))
	require.Len(t, tree.Levels, 1)
	assert.NotNil(t, tree.Levels[0].Lessons)
	assert.Empty(t, tree.Levels[0].Lessons)
}

func TestTree_Lessons(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "basics", "lesson-01"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pro", "lesson-01"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pro", "lesson-02"), 0755))

	all := Walk(root, levels("basics", "pro")).Lessons()
	require.Len(t, all, 3)
	assert.Equal(t, types.Lesson{Name: "lesson-01", Path: filepath.Join(root, "basics", "lesson-01"), Level: "basics"}, all[0])
	assert.Equal(t, "pro", all[2].Level)
}
