package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileName is the default profile file name.
const FileName = "deeppockets.yaml"

// EnvPath overrides the profile location.
const EnvPath = "DEEPPOCKETS_CONFIG"

const defaultLevel = "warn"

// Config represents the deeppockets.yaml profile.
type Config struct {
	Profile     ProfileConfig                `yaml:"profile"`
	Assumptions map[string]map[string]string `yaml:"assumptions,omitempty"` // category id -> title -> text
	Goals       []GoalConfig                 `yaml:"goals,omitempty"`
	Logging     LoggingConfig                `yaml:"logging"`
}

// ProfileConfig holds the user's income.
type ProfileConfig struct {
	Name          string  `yaml:"name,omitempty"`
	MonthlyIncome float64 `yaml:"monthly_income"`
}

// GoalConfig is a saved "can I save for this?" question.
type GoalConfig struct {
	Category string  `yaml:"category"`
	Target   float64 `yaml:"target"`
	By       string  `yaml:"by"` // "YYYY-MM-DD"
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AssumptionEdit is one user edit in application order.
type AssumptionEdit struct {
	CategoryID string
	Title      string
	Text       string
}

// Load reads a profile from disk. A missing file surfaces fs.ErrNotExist so
// callers can fall back to Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	cfg := Default("", 0)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLevel
	}
	return cfg, nil
}

// Save writes the profile, replacing any existing file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("saving profile %s: %w", path, err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new profile.
func Default(name string, monthlyIncome float64) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:          name,
			MonthlyIncome: monthlyIncome,
		},
		Assumptions: map[string]map[string]string{},
		Logging: LoggingConfig{
			Level: defaultLevel,
		},
	}
}

// Path returns the profile path from DEEPPOCKETS_CONFIG, or FileName.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return FileName
}

// Edits flattens assumption overrides sorted by category id then title so
// they apply deterministically.
func (c *Config) Edits() []AssumptionEdit {
	var edits []AssumptionEdit
	for id, byTitle := range c.Assumptions {
		for title, text := range byTitle {
			edits = append(edits, AssumptionEdit{CategoryID: id, Title: title, Text: text})
		}
	}
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].CategoryID != edits[j].CategoryID {
			return edits[i].CategoryID < edits[j].CategoryID
		}
		return edits[i].Title < edits[j].Title
	})
	return edits
}

// SetAssumption records a user edit.
func (c *Config) SetAssumption(categoryID, title, text string) {
	if c.Assumptions == nil {
		c.Assumptions = map[string]map[string]string{}
	}
	if c.Assumptions[categoryID] == nil {
		c.Assumptions[categoryID] = map[string]string{}
	}
	c.Assumptions[categoryID][title] = text
}
