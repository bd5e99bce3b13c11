package classifyengine

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/feedlattice/classify/internal/ladder"
)

// Config holds the policy knobs a caller can set from a file, adapted
// from the teacher's crawler.Config / DefaultConfig / LoadFromFile
// pattern: try YAML, fall back to JSON.
type Config struct {
	// Depth is the caller-supplied floor rung. Empty string means "no
	// floor" (the resolver is free to use the strongest rung available).
	Depth string `json:"depth" yaml:"depth"`

	// EnabledCandidateGates is a list of candidate gate names, loaded and
	// saved with the config. Nothing in this module reads it: it does not
	// add or remove gates, and only the built-in enclosureConflict gate plus
	// any Policy.CandidateGates passed in code run.
	EnabledCandidateGates []string `json:"enabled_candidate_gates" yaml:"enabled_candidate_gates"`

	// EnabledUpdateGates is a list of update gate names, loaded and saved
	// with the config. Nothing in this module reads it: only the built-in
	// contentChange gate plus any Policy.UpdateGates passed in code run.
	EnabledUpdateGates []string `json:"enabled_update_gates" yaml:"enabled_update_gates"`

	// Trace enables the trace event stream on the CLI's log output.
	Trace bool `json:"trace" yaml:"trace"`

	// ExistingDBPath, when set, tells the CLI to load existingItems from
	// a bbolt replay corpus (internal/corpus) instead of the batch file.
	ExistingDBPath string `json:"existing_db_path" yaml:"existing_db_path"`

	// Channel scopes the replay corpus lookup to one bucket.
	Channel string `json:"channel" yaml:"channel"`

	Verbose bool `json:"verbose" yaml:"verbose"`
	Debug   bool `json:"debug" yaml:"debug"`
}

// DefaultConfig returns a configuration with sensible defaults: no floor
// rung, no extra gates, trace off.
func DefaultConfig() *Config {
	return &Config{
		Depth:   "",
		Trace:   false,
		Verbose: false,
		Debug:   false,
	}
}

// LoadFromFile loads configuration from a file, trying YAML first, then
// JSON, matching the teacher's own LoadFromFile.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	return config, nil
}

// SaveToFile writes the configuration back out, in YAML unless path ends
// in ".json".
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if len(path) > 5 && path[len(path)-5:] == ".json" {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports whether the configured depth, if any, names a
// recognized rung.
func (c *Config) Validate() error {
	if c.Depth != "" {
		if _, ok := ladder.ParseRung(c.Depth); !ok {
			return fmt.Errorf("unrecognized depth %q", c.Depth)
		}
	}
	return nil
}

// Clone deep-copies the configuration.
func (c *Config) Clone() *Config {
	data, _ := json.Marshal(c)
	clone := &Config{}
	_ = json.Unmarshal(data, clone)
	return clone
}

// ResolveDepth parses Depth into a *Rung floor for Classify, nil when
// Depth is empty. Callers must call Validate first.
func (c *Config) ResolveDepth() *Rung {
	if c.Depth == "" {
		return nil
	}
	r, ok := ladder.ParseRung(c.Depth)
	if !ok {
		return nil
	}
	return &r
}
