package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/lesson-audit/internal/types"
)

// headerGuardPattern requires an adjacent #ifndef/#define pair on a *_H macro.
var headerGuardPattern = regexp.MustCompile(`#ifndef\s+\w+_H\s*\n#define\s+\w+_H`)

// CheckHeader applies the header rules. The guard and trailing #endif checks are independent.
func CheckHeader(path, content string) []types.Finding {
	var findings []types.Finding

	if !headerGuardPattern.MatchString(content) {
		findings = append(findings, issue(path, "Missing proper header guards"))
	}

	if !strings.HasSuffix(strings.TrimSpace(content), "#endif") {
		findings = append(findings, issue(path, "Missing #endif at end of header file"))
	}

	return findings
}
