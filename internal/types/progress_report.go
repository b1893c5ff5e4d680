//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Overview holds project-wide completion totals
type Overview struct {
	TotalLessons     int     `json:"total_lessons"`
	CompletedLessons int     `json:"completed_lessons"`
	CompletionRate   float64 `json:"completion_rate"`
	TotalFiles       int     `json:"total_files"`
}

// LevelStats holds completion totals for one difficulty level
type LevelStats struct {
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	Expected       int     `json:"expected"`
	CompletionRate float64 `json:"completion_rate"`
	Mismatch       bool    `json:"mismatch"` // found lesson count differs from expected
}

// LessonDetail is the per-lesson status line
type LessonDetail struct {
	Name          string `json:"name"`
	Complete      bool   `json:"complete"`
	HasExecutable bool   `json:"has_executable"`
	FileCount     int    `json:"file_count"`
}

// CodeQuality holds aggregate metrics over every C source file
type CodeQuality struct {
	TotalCFiles     int     `json:"total_c_files"`
	TotalLines      int     `json:"total_lines"`
	AvgLinesPerFile float64 `json:"avg_lines_per_file"`
	CommentRate     float64 `json:"comment_rate"`
	HeaderRate      float64 `json:"header_rate"`
}

// Recommendation is advisory text derived from level completion
type Recommendation struct {
	FocusLevel  string   `json:"focus_level,omitempty"`
	AllComplete bool     `json:"all_complete"`
	General     []string `json:"general"`
}

// ProgressData groups every aggregate computed by the progress analyzer
type ProgressData struct {
	Overview         Overview                  `json:"overview"`
	LevelOrder       []string                  `json:"level_order"`
	MissingLevels    []string                  `json:"missing_levels"`
	DifficultyLevels map[string]LevelStats     `json:"difficulty_levels"`
	LessonDetails    map[string][]LessonDetail `json:"lesson_details"`
	CodeQuality      CodeQuality               `json:"code_quality"`
	Recommendation   Recommendation            `json:"recommendation"`
}

// ProgressReport is the snapshot written once per progress run
type ProgressReport struct {
	RunID        string       `json:"run_id"`
	GeneratedAt  time.Time    `json:"generated_at"`
	Root         string       `json:"root"`
	ProgressData ProgressData `json:"progress_data"`
}
