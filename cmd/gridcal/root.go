package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/gridcal/internal/config"
	"github.com/javajack/gridcal/schedule"
	"github.com/javajack/gridcal/tabular"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "gridcal",
		Short:         "Place tasks into calendar spreadsheet slots",
		Long:          "gridcal locates day cells in month sheets of a calendar workbook and allocates the free slots beneath them across a weekly scheduling horizon.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/gridcal/config.toml)")

	loadConfig := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFrom(configPath)
		}
		return config.Load()
	}

	root.AddCommand(newScheduleCmd(loadConfig))
	root.AddCommand(newInspectCmd(loadConfig))
	root.AddCommand(newLogCmd(loadConfig))
	return root
}

// openClient builds the workbook-backed client from the configuration.
func openClient(cfg *config.Config) (*tabular.Workbook, error) {
	if cfg.Calendar.WorkbookPath == "" {
		return nil, fmt.Errorf("calendar.workbook_path is not set")
	}
	return tabular.OpenWorkbook(cfg.Calendar.WorkbookPath)
}

// newScheduler wires a Scheduler from the configuration.
func newScheduler(cfg *config.Config, client tabular.Client) (*schedule.Scheduler, error) {
	weekday, err := cfg.Weekday()
	if err != nil {
		return nil, err
	}
	opts := []schedule.Option{
		schedule.WithLabelTemplate(schedule.NewLabelTemplate(cfg.Schedule.LabelTemplate)),
	}
	return schedule.New(client, schedule.Config{
		SpreadsheetID: cfg.Calendar.SpreadsheetID,
		TasksSheet:    cfg.Calendar.TasksSheet,
		Weeks:         cfg.Schedule.Weeks,
		Weekday:       weekday,
		MaxSlots:      cfg.Schedule.MaxSlots,
		SplitTasks:    cfg.Schedule.SplitTasks,
	}, opts...), nil
}
