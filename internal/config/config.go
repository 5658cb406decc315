// Package config handles configuration loading from files, defaults, and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// CalendarConfig identifies the calendar document and its task-log sheet.
type CalendarConfig struct {
	SpreadsheetID string `toml:"spreadsheet_id"`
	WorkbookPath  string `toml:"workbook_path"` // local xlsx backend
	TasksSheet    string `toml:"tasks_sheet"`
}

// ScheduleConfig holds slot-allocation settings.
type ScheduleConfig struct {
	Weeks         int    `toml:"weeks"`          // weekly anchors in the horizon
	MaxSlots      int    `toml:"max_slots"`      // usable cells beneath each day anchor
	SplitTasks    bool   `toml:"split_tasks"`    // one slot per task vs one per batch
	StartWeekday  string `toml:"start_weekday"`  // e.g. "monday"
	LabelTemplate string `toml:"label_template"` // expr over person/task/tasks/date
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			TasksSheet: "Tasks",
		},
		Schedule: ScheduleConfig{
			Weeks:        6,
			MaxSlots:     5,
			SplitTasks:   true,
			StartWeekday: "monday",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "gridcal", "config.toml")
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path. It starts with
// defaults, overlays the file if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies GRIDCAL_* environment variables over the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRIDCAL_SPREADSHEET_ID"); v != "" {
		cfg.Calendar.SpreadsheetID = v
	}
	if v := os.Getenv("GRIDCAL_WORKBOOK_PATH"); v != "" {
		cfg.Calendar.WorkbookPath = v
	}
	if v := os.Getenv("GRIDCAL_TASKS_SHEET"); v != "" {
		cfg.Calendar.TasksSheet = v
	}
	if v := os.Getenv("GRIDCAL_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.Weeks = n
		}
	}
	if v := os.Getenv("GRIDCAL_MAX_SLOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.MaxSlots = n
		}
	}
	if v := os.Getenv("GRIDCAL_SPLIT_TASKS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Schedule.SplitTasks = b
		}
	}
	if v := os.Getenv("GRIDCAL_START_WEEKDAY"); v != "" {
		cfg.Schedule.StartWeekday = v
	}
}

// Weekday parses the configured start weekday.
func (c *Config) Weekday() (time.Weekday, error) {
	return parseWeekday(c.Schedule.StartWeekday)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	if d, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday: %q", name)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Schedule.Weeks < 1 {
		return fmt.Errorf("schedule.weeks must be at least 1, got %d", c.Schedule.Weeks)
	}
	if c.Schedule.MaxSlots < 1 {
		return fmt.Errorf("schedule.max_slots must be at least 1, got %d", c.Schedule.MaxSlots)
	}
	if _, err := c.Weekday(); err != nil {
		return err
	}
	return nil
}
