package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/levelup/internal/storage"
)

type RuntimeConfig struct {
	TasksFile            string
	Backend              string
	DBPath               string
	DesktopNotifications bool
	Autoload             bool
	BannerDuration       time.Duration
	PopupDuration        time.Duration
	LogFile              string
	LogLevel             string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TasksFile:            "tasks.json",
		Backend:              string(storage.BackendJSON),
		DBPath:               "levelup.db",
		DesktopNotifications: false,
		Autoload:             false,
		BannerDuration:       1000 * time.Millisecond,
		PopupDuration:        1500 * time.Millisecond,
		LogFile:              "",
		LogLevel:             "info",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("LEVELUP_TASKS_FILE"); ok {
		cfg.TasksFile = v
	}
	if v, ok := getEnvString("LEVELUP_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("LEVELUP_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvBool("LEVELUP_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvBool("LEVELUP_AUTOLOAD"); ok {
		cfg.Autoload = v
	}
	if v, ok := getEnvInt("LEVELUP_BANNER_MS"); ok && v > 0 {
		cfg.BannerDuration = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvInt("LEVELUP_POPUP_MS"); ok && v > 0 {
		cfg.PopupDuration = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvString("LEVELUP_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("LEVELUP_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg
}

// StoragePath is the file the selected backend reads and writes.
func (c RuntimeConfig) StoragePath() string {
	if storage.Backend(c.Backend) == storage.BackendSQLite {
		return c.DBPath
	}
	return c.TasksFile
}

func (c RuntimeConfig) Validate() error {
	backend := storage.Backend(c.Backend)
	if !backend.IsValid() {
		return &ConfigError{Field: "backend", Message: fmt.Sprintf("unknown backend %q (want json or sqlite)", c.Backend)}
	}
	if backend == storage.BackendSQLite {
		if strings.TrimSpace(c.DBPath) == "" {
			return &ConfigError{Field: "db_path", Message: "database path cannot be empty"}
		}
	} else if strings.TrimSpace(c.TasksFile) == "" {
		return &ConfigError{Field: "tasks_file", Message: "tasks file cannot be empty"}
	}
	if c.BannerDuration <= 0 {
		return &ConfigError{Field: "banner_duration", Message: "banner duration must be positive"}
	}
	if c.PopupDuration <= 0 {
		return &ConfigError{Field: "popup_duration", Message: "popup duration must be positive"}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "log_level", Message: fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in " + e.Field + ": " + e.Message
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
