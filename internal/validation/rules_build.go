package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/lesson-audit/internal/types"
)

// RequiredTargets must appear in every lesson Makefile.
var RequiredTargets = []string{"all:", "clean:"}

// MinReadmeLength is the shortest README, in characters, that passes.
const MinReadmeLength = 200

// CheckMakefile requires the standard targets; a missing CFLAGS is only a warning.
func CheckMakefile(path, content string) []types.Finding {
	var findings []types.Finding

	for _, target := range RequiredTargets {
		if !strings.Contains(content, target) {
			findings = append(findings, issue(path, fmt.Sprintf("Missing required target: %s", target)))
		}
	}

	if !strings.Contains(content, "CFLAGS") {
		findings = append(findings, warning(path, "Consider defining CFLAGS for consistent compilation"))
	}

	return findings
}

// CheckReadme requires a markdown heading and a minimum length; a missing code
// fence is only a warning.
func CheckReadme(path, content string) []types.Finding {
	var findings []types.Finding

	if !strings.Contains(content, "#") {
		findings = append(findings, issue(path, "README should have proper markdown headers"))
	}

	if !strings.Contains(content, "```") {
		findings = append(findings, warning(path, "Consider adding code examples in README"))
	}

	if utf8.RuneCountInString(content) < MinReadmeLength {
		findings = append(findings, issue(path, "README seems too short, should provide comprehensive documentation"))
	}

	return findings
}
