package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Archive     ArchiveConfig     `yaml:"archive"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ArchiveConfig struct {
	LogDir     string `yaml:"logDir"`     // source log directory
	ArchiveDir string `yaml:"archiveDir"` // defaults to <logDir>/archive
	Pattern    string `yaml:"pattern"`    // glob matched against file names, e.g. "*.log"
}

type MaintenanceConfig struct {
	OlderThanDays int         `yaml:"olderThanDays"` // compress files older than this
	KeepDays      int         `yaml:"keepDays"`      // retention window for archives
	Codec         string      `yaml:"codec"`         // "zip", "gz", "zst"
	Schedule      string      `yaml:"schedule"`      // cron spec for the run loop, empty disables
	Watch         WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Mode           string   `yaml:"mode"`           // "auto", "poll", "fsnotify", "off"
	PollInterval   Duration `yaml:"pollInterval"`   // e.g. 1h
	DebounceWindow Duration `yaml:"debounceWindow"` // e.g. 30s
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "json", "text"
}

// Duration is a time.Duration that unmarshals from YAML scalars like "30s"
// or "1h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}
