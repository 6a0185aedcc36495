// Package config resolves the runtime configuration for cc-standup from
// defaults, an optional env file and process environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration consumed by the report pipeline. It is
// passed in explicitly; the core packages read nothing from the process
// environment themselves.
type Config struct {
	LogDir string // directory holding one log file per day
	LogExt string // log file extension, including the dot
	Format string // output format name; unrecognized values fall back to plain
	Date   string // report date, YYYY-MM-DD
}

// Default returns a Config with sensible defaults: yesterday's log under
// ~/.claude/standup, rendered in the plain format.
func Default() Config {
	cfg := Config{
		LogExt: ".md",
		Format: "plain",
		Date:   Yesterday(),
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.LogDir = filepath.Join(home, ".claude", "standup")
	}
	return cfg
}

// Load reads configuration from an optional ~/.cc-standup/config.env file
// and environment variables, falling back to defaults for unset values.
func Load() Config {
	loadEnvFile()

	cfg := Default()
	if v := os.Getenv("CC_STANDUP_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("CC_STANDUP_FORMAT"); v != "" {
		cfg.Format = v
	}
	return cfg
}

// Yesterday returns the default report date: the calendar day before today
// in local time.
func Yesterday() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}

func loadEnvFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	path := filepath.Join(home, ".cc-standup", "config.env")
	if _, err := os.Stat(path); err == nil {
		_ = godotenv.Load(path)
	}
}
