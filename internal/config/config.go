// Package config loads the daemon's process-level settings from the
// environment, the same flat os.Getenv/strconv pattern the sibling
// tienphuocgroup-tienbangchu example uses for its own Config.Load.
package config

import (
	"os"
	"strconv"

	"github.com/username/vietflux-ime/internal/store"
)

// Config is the daemon's process-level configuration: the things that
// differ per deployment, as opposed to per-user typing behavior (which
// lives in store.State and is hot-reloadable via the admin API).
type Config struct {
	AdminAddr   string
	LogLevel    string
	LogToFile   bool
	LogFilePath string
	StatePath   string
}

// Load reads Config from the environment, falling back to the
// teacher's original defaults (log file name typing.log, admin address
// 127.0.0.1:8765) where no override is set. Logging goes to stdout
// unless VIETFLUX_LOG_FILE or VIETFLUX_LOG_TO_FILE turns file logging on.
func Load() *Config {
	cfg := &Config{
		AdminAddr:   "127.0.0.1:8765",
		LogLevel:    "info",
		LogToFile:   false,
		LogFilePath: "typing.log",
		StatePath:   store.DefaultPath(),
	}

	if v := os.Getenv("VIETFLUX_ADMIN_ADDR"); v != "" {
		cfg.AdminAddr = v
	}
	if v := os.Getenv("VIETFLUX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("VIETFLUX_LOG_FILE"); v != "" {
		cfg.LogFilePath = v
		cfg.LogToFile = true
	}
	if v := os.Getenv("VIETFLUX_LOG_TO_FILE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogToFile = b
		}
	}
	if v := os.Getenv("VIETFLUX_STATE_PATH"); v != "" {
		cfg.StatePath = v
	}

	return cfg
}
