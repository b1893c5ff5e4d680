// Package progress computes lesson completion and code-quality statistics for a lesson tree.
package progress

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/lesson-audit/internal/lessonrepo"
	"github.com/jonathan/lesson-audit/internal/logger"
	"github.com/jonathan/lesson-audit/internal/types"
)

// Analyzer builds progress reports from a walked lesson tree.
type Analyzer struct {
	log *logger.Logger
	now func() time.Time
}

// NewAnalyzer returns an Analyzer. A nil logger discards output.
func NewAnalyzer(log *logger.Logger) *Analyzer {
	return &Analyzer{log: logger.OrNop(log), now: time.Now}
}

// Analyze computes every section of the progress report.
func (a *Analyzer) Analyze(tree *lessonrepo.Tree) *types.ProgressReport {
	levels, order := LevelBreakdown(tree)

	data := types.ProgressData{
		Overview:         Overview(tree),
		LevelOrder:       order,
		MissingLevels:    tree.Missing,
		DifficultyLevels: levels,
		LessonDetails:    LessonDetails(tree),
		CodeQuality:      ScanCodeQuality(tree, a.log),
		Recommendation:   Recommend(tree),
	}

	a.log.Debug("progress analyzed",
		"lessons", data.Overview.TotalLessons,
		"completed", data.Overview.CompletedLessons,
		"missing_levels", len(tree.Missing))

	return &types.ProgressReport{
		RunID:        uuid.NewString(),
		GeneratedAt:  a.now(),
		Root:         tree.Root,
		ProgressData: data,
	}
}

// Overview counts lessons, completed lessons and files across every present level.
func Overview(tree *lessonrepo.Tree) types.Overview {
	var ov types.Overview
	for _, lesson := range tree.Lessons() {
		ov.TotalLessons++
		if lessonrepo.IsComplete(lesson) {
			ov.CompletedLessons++
		}
		ov.TotalFiles += lessonrepo.FileCount(lesson)
	}
	ov.CompletionRate = percent(ov.CompletedLessons, ov.TotalLessons)
	return ov
}

// LevelBreakdown returns per-level stats keyed by level name plus the level order.
// Missing levels do not appear.
func LevelBreakdown(tree *lessonrepo.Tree) (map[string]types.LevelStats, []string) {
	stats := make(map[string]types.LevelStats, len(tree.Levels))
	order := make([]string, 0, len(tree.Levels))

	for _, lvl := range tree.Levels {
		completed := countComplete(lvl.Lessons)
		total := len(lvl.Lessons)
		stats[lvl.Name] = types.LevelStats{
			Completed:      completed,
			Total:          total,
			Expected:       lvl.ExpectedLessons,
			CompletionRate: percent(completed, total),
			Mismatch:       total != lvl.ExpectedLessons,
		}
		order = append(order, lvl.Name)
	}

	return stats, order
}

// LessonDetails returns the status of every lesson, grouped by level name.
func LessonDetails(tree *lessonrepo.Tree) map[string][]types.LessonDetail {
	details := make(map[string][]types.LessonDetail, len(tree.Levels))
	for _, lvl := range tree.Levels {
		rows := make([]types.LessonDetail, 0, len(lvl.Lessons))
		for _, lesson := range lvl.Lessons {
			rows = append(rows, types.LessonDetail{
				Name:          lesson.Name,
				Complete:      lessonrepo.IsComplete(lesson),
				HasExecutable: lessonrepo.HasExecutable(lesson),
				FileCount:     lessonrepo.FileCount(lesson),
			})
		}
		details[lvl.Name] = rows
	}
	return details
}

func countComplete(lessons []types.Lesson) int {
	n := 0
	for _, l := range lessons {
		if lessonrepo.IsComplete(l) {
			n++
		}
	}
	return n
}

// percent returns 100*part/whole, or 0 when whole is 0.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(100*part) / float64(whole)
}
