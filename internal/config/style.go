package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxStyleInstructions caps the instruction list so a runaway profile cannot
// inflate the synthesis prompt.
const maxStyleInstructions = 20

// StyleConfig represents the optional YAML style profile controlling the
// voice of generated posts. Every field is optional; blanks fall back to the
// writer defaults.
type StyleConfig struct {
	Style struct {
		Tone         string   `yaml:"tone"`
		Audience     string   `yaml:"audience"`
		Language     string   `yaml:"language"`
		Instructions []string `yaml:"instructions"`
	} `yaml:"style"`
}

// LoadStyleConfig loads a style profile from a YAML file.
// The path parameter is expected to come from a trusted source (an
// environment variable set by the operator), not request input.
func LoadStyleConfig(path string) (*StyleConfig, error) {
	// #nosec G304 -- path is provided by trusted source (environment variable), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}

	var config StyleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse style file: %w", err)
	}

	if err := validateStyleConfig(&config); err != nil {
		return nil, fmt.Errorf("style validation failed: %w", err)
	}

	return &config, nil
}

// validateStyleConfig validates the loaded profile.
func validateStyleConfig(config *StyleConfig) error {
	if len(config.Style.Instructions) > maxStyleInstructions {
		return fmt.Errorf("too many instructions: %d exceeds the limit of %d",
			len(config.Style.Instructions), maxStyleInstructions)
	}

	for i, instruction := range config.Style.Instructions {
		if strings.TrimSpace(instruction) == "" {
			return fmt.Errorf("instruction %d is blank", i+1)
		}
	}

	return nil
}

// GetTone returns the configured tone, empty when unset.
func (c *StyleConfig) GetTone() string {
	return c.Style.Tone
}

// GetAudience returns the configured audience, empty when unset.
func (c *StyleConfig) GetAudience() string {
	return c.Style.Audience
}

// GetLanguage returns the configured language, empty when unset.
func (c *StyleConfig) GetLanguage() string {
	return c.Style.Language
}

// GetInstructions returns the configured instruction list.
func (c *StyleConfig) GetInstructions() []string {
	return c.Style.Instructions
}
