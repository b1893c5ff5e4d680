package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	schemafiles "github.com/jonathan/lesson-audit/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validValidationReport = `{
	"run_id": "3f1c2b8e-7d1a-4f2b-9e0a-1c2d3e4f5a6b",
	"generated_at": "2024-05-01T10:20:30Z",
	"root": ".",
	"success": false,
	"total_files": 4,
	"passed_files": 3,
	"invalid_lessons": [],
	"issues": [{"path": "basics/lesson-01/main.c", "message": "No #include statements found", "severity": "issue"}],
	"warnings": []
}`

func TestValidateBytes_Valid(t *testing.T) {
	err := ValidateBytes(schemafiles.ValidationReport, []byte(validValidationReport))
	assert.NoError(t, err)
}

func TestValidateBytes_MissingField(t *testing.T) {
	err := ValidateBytes(schemafiles.ValidationReport, []byte(`{"run_id": "x", "root": "."}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateBytes_WrongSeverity(t *testing.T) {
	doc := `{
		"run_id": "x", "generated_at": "2024-05-01T10:20:30Z", "root": ".",
		"success": true, "total_files": 0, "passed_files": 0,
		"issues": [{"path": "a", "message": "b", "severity": "fatal"}],
		"warnings": null
	}`
	err := ValidateBytes(schemafiles.ValidationReport, []byte(doc))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Errors[0].Field, "issues.0.severity")
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := ValidateBytes("missing.schema.json", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing.schema.json", loadErr.Path)
}

func TestValidateBytes_MalformedDocument(t *testing.T) {
	err := ValidateBytes(schemafiles.ValidationReport, []byte(`{not json`))

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(validValidationReport), 0644))

	assert.NoError(t, ValidateFile(schemafiles.ValidationReport, path))
}

func TestValidateFile_NotFound(t *testing.T) {
	err := ValidateFile(schemafiles.ProgressReport, "/nonexistent/progress.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "(root)", Message: "run_id is required"},
		{Field: "total_files", Message: "Must be greater than or equal to 0"},
	}}
	assert.Equal(t, "validation failed:\n  1. (root): run_id is required\n  2. total_files: Must be greater than or equal to 0\n", err.Error())
}
