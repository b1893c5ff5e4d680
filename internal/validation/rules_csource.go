package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/lesson-audit/internal/types"
)

// functionPattern is a textual heuristic for a one-line function definition
// such as "int add(int a, int b) {". It is not a C parser.
var functionPattern = regexp.MustCompile(`^\w+\s+\w+\s*\([^)]*\)\s*\{`)

var (
	allocCalls  = []string{"malloc(", "calloc(", "realloc("}
	fileIOCalls = []string{"fopen(", "fread(", "fwrite("}
)

// CheckCSource applies the C source rules. Every rule runs regardless of the others.
// The memory and NULL checks are file-wide substring tests, so an allocation and
// a free() in unrelated functions still satisfy them.
func CheckCSource(path, content string) []types.Finding {
	var findings []types.Finding
	lines := strings.Split(content, "\n")

	if !strings.Contains(content, "#include") {
		findings = append(findings, issue(path, "No #include statements found"))
	}

	for i, line := range lines {
		if strings.Contains(line, "\t") {
			findings = append(findings, issue(path, fmt.Sprintf("Line %d: Uses tabs instead of spaces for indentation", i+1)))
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if functionPattern.MatchString(trimmed) && !strings.HasSuffix(trimmed, "{") {
			findings = append(findings, issue(path, fmt.Sprintf("Line %d: Opening brace should be on same line as function", i+1)))
		}
	}

	if containsAny(content, allocCalls) && !strings.Contains(content, "free(") {
		findings = append(findings, issue(path, "Memory allocation found but no corresponding free()"))
	}

	if strings.Contains(content, "int main(") && !strings.Contains(content, "return") {
		findings = append(findings, issue(path, "main() function should have return statement"))
	}

	if containsAny(content, fileIOCalls) && !strings.Contains(content, "NULL") {
		findings = append(findings, warning(path, "File operations should check for NULL returns"))
	}

	return findings
}

func containsAny(content string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(content, n) {
			return true
		}
	}
	return false
}
