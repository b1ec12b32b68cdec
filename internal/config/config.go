// Package config provides configuration loading and validation for logfixer.
// Configuration can be supplied via a YAML file (e.g. .logfixer.yaml) or
// programmatically for use in tests.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure for logfixer.
type Config struct {
	// Rules allows selectively disabling individual built-in rules.
	// Example YAML:
	//   rules:
	//     error-metadata: false
	Rules map[string]bool `yaml:"rules"`

	// ExtraRules appends user-defined pattern/replacement pairs that run
	// after the built-in rules, in declaration order. Patterns use Go regexp
	// syntax; replacements may reference capture groups with $1, $2, ...
	// Example YAML:
	//   extra_rules:
	//     - name: console-drop
	//       pattern: console\.log\(([^)]*)\)
	//       replacement: logger.debug($1)
	ExtraRules []RuleSpec `yaml:"extra_rules"`
}

// RuleSpec is the YAML shape of a user-defined rewrite rule.
type RuleSpec struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// DefaultConfig returns a configuration with all built-in rules enabled and
// no extra rules.
func DefaultConfig() *Config {
	return &Config{
		Rules: map[string]bool{},
	}
}

// IsRuleEnabled reports whether the named rule should run.
// Unknown rule names default to enabled so that new rules are active by
// default even if the user has not updated their config file.
func (c *Config) IsRuleEnabled(name string) bool {
	if c.Rules == nil {
		return true
	}
	enabled, ok := c.Rules[name]
	if !ok {
		return true
	}
	return enabled
}

// Load reads a YAML config file from path and merges it on top of the
// default configuration. Missing fields keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file is perfectly fine – use defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("logfixer: reading config %q: %w", path, err)
	}

	// We unmarshal into a temporary struct so we can selectively merge only
	// the fields that were actually present in the file.
	var file struct {
		Rules      map[string]bool `yaml:"rules"`
		ExtraRules []RuleSpec      `yaml:"extra_rules"`
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("logfixer: parsing config %q: %w", path, err)
	}

	if file.Rules != nil {
		for k, v := range file.Rules {
			cfg.Rules[k] = v
		}
	}
	for _, spec := range file.ExtraRules {
		if spec.Pattern == "" {
			return nil, fmt.Errorf(
				"logfixer: config %q: extra rule %q has no pattern",
				path, spec.Name,
			)
		}
	}
	cfg.ExtraRules = append(cfg.ExtraRules, file.ExtraRules...)

	return cfg, nil
}
