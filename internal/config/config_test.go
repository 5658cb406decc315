package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Calendar.TasksSheet != "Tasks" {
		t.Errorf("expected tasks_sheet Tasks, got %s", cfg.Calendar.TasksSheet)
	}
	if cfg.Schedule.Weeks != 6 {
		t.Errorf("expected 6 weeks, got %d", cfg.Schedule.Weeks)
	}
	if cfg.Schedule.MaxSlots != 5 {
		t.Errorf("expected 5 max slots, got %d", cfg.Schedule.MaxSlots)
	}
	if !cfg.Schedule.SplitTasks {
		t.Error("expected split_tasks to default to true")
	}
	if d, err := cfg.Weekday(); err != nil || d != time.Monday {
		t.Errorf("expected monday, got %v (%v)", d, err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Schedule.Weeks != 6 {
		t.Errorf("expected defaults, got weeks=%d", cfg.Schedule.Weeks)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[calendar]
spreadsheet_id = "book-1"
workbook_path = "/tmp/calendar.xlsx"
tasks_sheet = "Log"

[schedule]
weeks = 4
max_slots = 3
split_tasks = false
start_weekday = "friday"
label_template = 'task + " (" + person + ")"'
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calendar.SpreadsheetID != "book-1" {
		t.Errorf("expected spreadsheet_id book-1, got %s", cfg.Calendar.SpreadsheetID)
	}
	if cfg.Calendar.TasksSheet != "Log" {
		t.Errorf("expected tasks_sheet Log, got %s", cfg.Calendar.TasksSheet)
	}
	if cfg.Schedule.Weeks != 4 {
		t.Errorf("expected 4 weeks, got %d", cfg.Schedule.Weeks)
	}
	if cfg.Schedule.SplitTasks {
		t.Error("expected split_tasks false")
	}
	if d, _ := cfg.Weekday(); d != time.Friday {
		t.Errorf("expected friday, got %v", d)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(configPath, []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("GRIDCAL_SPREADSHEET_ID", "env-book")
	t.Setenv("GRIDCAL_WEEKS", "2")
	t.Setenv("GRIDCAL_SPLIT_TASKS", "false")
	t.Setenv("GRIDCAL_START_WEEKDAY", "tuesday")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calendar.SpreadsheetID != "env-book" {
		t.Errorf("expected env-book, got %s", cfg.Calendar.SpreadsheetID)
	}
	if cfg.Schedule.Weeks != 2 {
		t.Errorf("expected 2 weeks, got %d", cfg.Schedule.Weeks)
	}
	if cfg.Schedule.SplitTasks {
		t.Error("expected split_tasks false")
	}
	if d, _ := cfg.Weekday(); d != time.Tuesday {
		t.Errorf("expected tuesday, got %v", d)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Schedule.Weeks = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for weeks=0")
	}

	cfg = Default()
	cfg.Schedule.MaxSlots = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for max_slots=0")
	}

	cfg = Default()
	cfg.Schedule.StartWeekday = "someday"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for bad weekday")
	}
}
