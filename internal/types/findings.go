//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Severity classifies a finding
type Severity string

const (
	// SeverityIssue blocks a successful validation run
	SeverityIssue Severity = "issue"
	// SeverityWarning is advisory only
	SeverityWarning Severity = "warning"
)

// Finding is a single rule result tied to a file or lesson path
type Finding struct {
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// String renders the finding as "path: message"
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Path, f.Message)
}
