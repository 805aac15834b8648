package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := mapEnvKey(envPattern.FindStringSubmatch(m)[1])
		return os.Getenv(key)
	})
}

func Load(path string) (*Config, error) {
	// read raw YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// expand $(ENV_VAR) placeholders
	expanded := expandEnvVars(string(data))

	// unmarshal into struct
	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default returns a config without reading any file, with all defaults set.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in the zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Archive.LogDir == "" {
		c.Archive.LogDir = "logs"
	}
	if c.Archive.ArchiveDir == "" {
		c.Archive.ArchiveDir = filepath.Join(c.Archive.LogDir, "archive")
	}
	if c.Archive.Pattern == "" {
		c.Archive.Pattern = "*.log"
	}
	if c.Maintenance.OlderThanDays == 0 {
		c.Maintenance.OlderThanDays = 7
	}
	if c.Maintenance.KeepDays == 0 {
		c.Maintenance.KeepDays = 30
	}
	if c.Maintenance.Codec == "" {
		c.Maintenance.Codec = "zip"
	}
	if c.Maintenance.Watch.Mode == "" {
		c.Maintenance.Watch.Mode = "auto"
	}
	if c.Maintenance.Watch.PollInterval == 0 {
		c.Maintenance.Watch.PollInterval = Duration(time.Hour)
	}
	if c.Maintenance.Watch.DebounceWindow == 0 {
		c.Maintenance.Watch.DebounceWindow = Duration(30 * time.Second)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
