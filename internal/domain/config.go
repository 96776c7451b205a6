package domain

import (
	"fmt"
	"time"
)

// RunConfig holds run-level configuration loaded from .fontcheck.yaml.
type RunConfig struct {
	// Autofix enables in-run repairs. When unset, autofix-capable rules
	// record ERROR instead and leave state untouched.
	Autofix bool `yaml:"autofix" json:"autofix"`

	// SkipNetwork disables the advisory network-backed checks.
	SkipNetwork bool `yaml:"skip_network" json:"skip_network,omitempty"`

	// SkipGoogleFonts skips checks that only apply to Google Fonts
	// submissions (em size).
	SkipGoogleFonts bool `yaml:"skip_gfonts" json:"skip_gfonts,omitempty"`

	// ToolTimeout bounds one external coverage-tool invocation.
	ToolTimeout time.Duration `yaml:"tool_timeout" json:"tool_timeout,omitempty"`

	// NetworkTimeout bounds one remote directory or profile lookup.
	NetworkTimeout time.Duration `yaml:"network_timeout" json:"network_timeout,omitempty"`

	// GlyphSets restricts the coverage checks to the named glyph sets.
	// Empty means all known sets.
	GlyphSets []string `yaml:"glyph_sets" json:"glyph_sets,omitempty"`
}

// DefaultRunConfig returns the configuration used when .fontcheck.yaml is
// absent.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		ToolTimeout:    30 * time.Second,
		NetworkTimeout: 10 * time.Second,
	}
}

// Validate catches typos in user-provided raw config before a run starts.
func (c RunConfig) Validate() error {
	if c.ToolTimeout < 0 {
		return fmt.Errorf("tool_timeout must not be negative, got %s", c.ToolTimeout)
	}
	if c.NetworkTimeout < 0 {
		return fmt.Errorf("network_timeout must not be negative, got %s", c.NetworkTimeout)
	}
	return nil
}
