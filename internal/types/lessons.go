// Package types provides type definitions for structured data used throughout the lesson-audit tools.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Lesson is one numbered lesson directory inside a level.
type Lesson struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Level string `json:"level"`
}

// Level is one difficulty tier directory and the lesson directories found in it.
type Level struct {
	Name            string   `json:"name"`
	Path            string   `json:"path"`
	ExpectedLessons int      `json:"expected_lessons"`
	Lessons         []Lesson `json:"lessons"`
}
