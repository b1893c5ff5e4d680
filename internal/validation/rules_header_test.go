package validation

import (
	"testing"

	"github.com/jonathan/lesson-audit/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCheckHeader_Valid(t *testing.T) {
	content := "#ifndef STACK_H\n#define STACK_H\n\nvoid push(int v);\n\n#endif\n"
	assert.Empty(t, CheckHeader("stack.h", content))
}

func TestCheckHeader_CRLF(t *testing.T) {
	content := "#ifndef QUEUE_H\r\n#define QUEUE_H\r\nvoid enqueue(int v);\r\n#endif\r\n"
	assert.Empty(t, CheckHeader("queue.h", content))
}

func TestCheckHeader_MissingGuardsButEndsWithEndif(t *testing.T) {
	content := "#pragma once\nvoid push(int v);\n#ifdef DEBUG\nvoid dump(void);\n#endif\n"
	issues := messages(CheckHeader("stack.h", content), types.SeverityIssue)
	assert.Equal(t, []string{"Missing proper header guards"}, issues)
}

func TestCheckHeader_GuardWithoutHSuffix(t *testing.T) {
	content := "#ifndef STACK_INCLUDED\n#define STACK_INCLUDED\n#endif\n"
	issues := messages(CheckHeader("stack.h", content), types.SeverityIssue)
	assert.Equal(t, []string{"Missing proper header guards"}, issues)
}

func TestCheckHeader_TrailingCommentAfterEndif(t *testing.T) {
	content := "#ifndef STACK_H\n#define STACK_H\n#endif /* STACK_H */\n"
	issues := messages(CheckHeader("stack.h", content), types.SeverityIssue)
	assert.Equal(t, []string{"Missing #endif at end of header file"}, issues)
}

func TestCheckHeader_Empty(t *testing.T) {
	issues := messages(CheckHeader("empty.h", ""), types.SeverityIssue)
	assert.Equal(t, []string{"Missing proper header guards", "Missing #endif at end of header file"}, issues)
}
