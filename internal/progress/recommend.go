package progress

import (
	"github.com/jonathan/lesson-audit/internal/lessonrepo"
	"github.com/jonathan/lesson-audit/internal/types"
)

// GeneralAdvice is appended to every recommendation.
var GeneralAdvice = []string{
	"Practice coding daily",
	"Experiment with code modifications",
	"Build projects using learned concepts",
	"Review and refactor previous code",
}

// Recommend picks the first present level, in configured priority order, that
// still has an incomplete lesson.
func Recommend(tree *lessonrepo.Tree) types.Recommendation {
	rec := types.Recommendation{General: GeneralAdvice}
	for _, lvl := range tree.Levels {
		if countComplete(lvl.Lessons) < len(lvl.Lessons) {
			rec.FocusLevel = lvl.Name
			return rec
		}
	}
	rec.AllComplete = true
	return rec
}
