// Package lessonrepo enumerates the level and lesson directories of a lesson tree.
package lessonrepo

import (
	"os"
	"path/filepath"

	"github.com/jonathan/lesson-audit/internal/config"
	"github.com/jonathan/lesson-audit/internal/types"
)

// LessonPattern is the glob a lesson directory name must match.
const LessonPattern = "lesson-*"

// Tree is one enumeration of a lesson root.
type Tree struct {
	Root string
	// Levels holds only levels whose directory exists, in configured order.
	Levels []types.Level
	// Missing lists configured levels with no directory under Root.
	Missing []string
}

// Walk enumerates every configured level directory under root together with
// its lesson directories, sorted by name. Levels without a directory are
// recorded in Missing and are not an error.
func Walk(root string, levels []config.Level) *Tree {
	tree := &Tree{Root: root}

	for _, lvl := range levels {
		levelPath := filepath.Join(root, lvl.Name)
		if !isDir(levelPath) {
			tree.Missing = append(tree.Missing, lvl.Name)
			continue
		}
		tree.Levels = append(tree.Levels, types.Level{
			Name:            lvl.Name,
			Path:            levelPath,
			ExpectedLessons: lvl.ExpectedLessons,
			Lessons:         listLessons(lvl.Name, levelPath),
		})
	}

	return tree
}

// Level returns the walked level with the given name.
func (t *Tree) Level(name string) (types.Level, bool) {
	for _, l := range t.Levels {
		if l.Name == name {
			return l, true
		}
	}
	return types.Level{}, false
}

// Lessons returns every lesson across all levels, level by level.
func (t *Tree) Lessons() []types.Lesson {
	var all []types.Lesson
	for _, l := range t.Levels {
		all = append(all, l.Lessons...)
	}
	return all
}

// listLessons returns the lesson directories of a level. os.ReadDir already
// sorts by file name; an unreadable level yields whatever entries were read.
func listLessons(level, levelPath string) []types.Lesson {
	entries, _ := os.ReadDir(levelPath)

	lessons := []types.Lesson{}
	for _, e := range entries {
		if !matches(LessonPattern, e.Name()) {
			continue
		}
		path := filepath.Join(levelPath, e.Name())
		if !isDir(path) {
			continue
		}
		lessons = append(lessons, types.Lesson{Name: e.Name(), Path: path, Level: level})
	}
	return lessons
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func matches(pattern, name string) bool {
	ok, err := filepath.Match(pattern, name)
	return err == nil && ok
}
