package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/lesson-audit/internal/config"
	"github.com/jonathan/lesson-audit/internal/lessonrepo"
	"github.com/jonathan/lesson-audit/internal/logger"
	"github.com/jonathan/lesson-audit/internal/observability"
	"github.com/jonathan/lesson-audit/internal/schemas"
)

const (
	envRoot   = "LESSON_AUDIT_ROOT"
	envConfig = "LESSON_AUDIT_CONFIG"
)

// runEnv is what every subcommand needs before touching the tree.
type runEnv struct {
	root    string
	config  *config.Config
	log     *logger.Logger
	printer *observability.Printer
}

// resolveRoot picks the course root from flag, then environment, then ".".
func resolveRoot(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envRoot); v != "" {
		return v
	}
	return "."
}

// resolveConfigPath picks the config file from flag, then environment, then
// test_config.json inside root.
func resolveConfigPath(flagValue, root string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envConfig); v != "" {
		return v
	}
	return filepath.Join(root, config.DefaultFileName)
}

func newRunEnv(out io.Writer) (*runEnv, error) {
	root := resolveRoot(rootDir)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("lesson root not found: %s", root)
	}

	log, err := logger.New(verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	path := resolveConfigPath(configPath, root)
	cfg, err := config.Resolve(path)
	if err != nil {
		log.Debug("using default levels", "config", path, "reason", err)
	} else {
		log.Debug("loaded level config", "config", path, "levels", cfg.LevelNames())
	}

	printer := observability.NewPrinter(out)
	if colorize {
		printer = observability.NewStyledPrinter(out, observability.ColorTheme())
	}

	return &runEnv{root: root, config: cfg, log: log, printer: printer}, nil
}

func (e *runEnv) walk() *lessonrepo.Tree {
	tree := lessonrepo.Walk(e.root, e.config.Levels)
	for _, name := range tree.Missing {
		e.log.Debug("level directory not found", "level", name)
	}
	return tree
}

// checkSchema validates a written JSON document. Failures are reported as
// warnings on stderr and never fail the command.
func checkSchema(schemaName, path, label string) {
	err := schemas.ValidateFile(schemaName, path)
	if err == nil {
		return
	}

	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Generated %s does not validate against schema: %v\n", label, err)
	} else if errors.As(err, &schemaLoadErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema (schema loading failed): %v\n", label, err)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", label, err)
	}
}
