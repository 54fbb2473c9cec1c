// Package config loads the goalpost configuration file, which fixes the
// vocabulary of recognized team-ask phrases. Like the team registry it is
// loaded once at startup and never mutated.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// AskDetails describes one recognized team-ask phrase.
type AskDetails struct {
	// Short is an abbreviated label used in rendered summaries.
	Short string `yaml:"short,omitempty"`

	// About says what the asked team is expected to do.
	About string `yaml:"about"`
}

// Config is the loaded configuration.
type Config struct {
	// TeamAsks maps each recognized ask phrase (the exact task text of a
	// team-ask plan row) to its details.
	TeamAsks map[string]AskDetails `yaml:"team_asks"`
}

// Load reads the configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadBytes parses the configuration from YAML content.
func LoadBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.TeamAsks) == 0 {
		return nil, fmt.Errorf("config defines no team asks")
	}
	return &cfg, nil
}

// New builds a configuration from an ask → details map. Useful in tests.
func New(asks map[string]AskDetails) *Config {
	return &Config{TeamAsks: asks}
}

// HasAsk reports whether the phrase is part of the recognized vocabulary.
func (c *Config) HasAsk(phrase string) bool {
	_, ok := c.TeamAsks[phrase]
	return ok
}

// DescribeAsks renders the full vocabulary, one "* phrase, meaning team
// should ..." line per entry in sorted order. Used in error messages.
func (c *Config) DescribeAsks() []string {
	phrases := make([]string, 0, len(c.TeamAsks))
	for phrase := range c.TeamAsks {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)

	lines := make([]string, len(phrases))
	for i, phrase := range phrases {
		lines[i] = fmt.Sprintf("* %q, meaning team should %s", phrase, c.TeamAsks[phrase].About)
	}
	return lines
}
