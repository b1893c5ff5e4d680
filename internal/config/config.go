// Package config provides configuration loading and validation for the CLI.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the lesson root when no path is given.
const DefaultFileName = "test_config.json"

// Level describes one expected difficulty level.
type Level struct {
	Name            string   `validate:"required,excludesall=/\\"`
	ExpectedLessons int      `validate:"gte=0"`
	Topics          []string `validate:"dive,required"`
}

// Config is the resolved, immutable configuration for a run.
// Levels are kept in file order, which is also the recommendation priority order.
type Config struct {
	Levels []Level `validate:"required,min=1,unique=Name,dive"`
}

// LevelNames returns the configured level names in order.
func (c *Config) LevelNames() []string {
	names := make([]string, 0, len(c.Levels))
	for _, l := range c.Levels {
		names = append(names, l.Name)
	}
	return names
}

// Default returns the built-in level set.
func Default() *Config {
	return &Config{
		Levels: []Level{
			{Name: "basics", ExpectedLessons: 6, Topics: []string{}},
			{Name: "intermediate", ExpectedLessons: 6, Topics: []string{}},
			{Name: "pro", ExpectedLessons: 6, Topics: []string{}},
			{Name: "master", ExpectedLessons: 6, Topics: []string{}},
		},
	}
}

// fileConfig mirrors the on-disk shape:
// {"test_configuration": {"difficulty_levels": {"basics": {"expected_lessons": 6, "topics": []}}}}
type fileConfig struct {
	TestConfiguration struct {
		DifficultyLevels levelList `json:"difficulty_levels" yaml:"difficulty_levels"`
	} `json:"test_configuration" yaml:"test_configuration"`
}

type levelBody struct {
	ExpectedLessons int      `json:"expected_lessons" yaml:"expected_lessons"`
	Topics          []string `json:"topics" yaml:"topics"`
}

// levelList decodes a name-keyed object while preserving key order.
type levelList []Level

func (l *levelList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("difficulty_levels must be an object")
	}

	var out levelList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)

		var body levelBody
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("level %q: %w", name, err)
		}
		out = append(out, newLevel(name, body))
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = out
	return nil
}

func (l *levelList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("difficulty_levels must be a mapping (line %d)", node.Line)
	}

	var out levelList
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var body levelBody
		if err := node.Content[i+1].Decode(&body); err != nil {
			return fmt.Errorf("level %q: %w", name, err)
		}
		out = append(out, newLevel(name, body))
	}

	*l = out
	return nil
}

func newLevel(name string, body levelBody) Level {
	topics := body.Topics
	if topics == nil {
		topics = []string{}
	}
	return Level{Name: name, ExpectedLessons: body.ExpectedLessons, Topics: topics}
}

// LoadConfig loads configuration from a JSON or YAML file (chosen by extension).
// Returns a *LoadError if the file cannot be read, parsed, or fails validation.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, &LoadError{Message: "config path is empty"}
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to get current directory", Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read config file", Cause: err}
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse config YAML", Cause: err}
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, &LoadError{Path: path, Message: "failed to parse config JSON", Cause: err}
		}
	}

	cfg := &Config{Levels: fc.TestConfiguration.DifficultyLevels}
	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid config", Cause: err}
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Resolve loads the config at path, falling back to Default when the file is
// absent or unusable. The returned error, if any, explains why the default was used;
// it is informational and the returned Config is always usable.
func Resolve(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}
