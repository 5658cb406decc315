package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javajack/gridcal/grid"
	"github.com/javajack/gridcal/internal/config"
)

func newScheduleCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var person string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Allocate slots for tasks on the upcoming weekly anchors and write them back",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := openClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			sched, err := newScheduler(cfg, client)
			if err != nil {
				return err
			}

			report, err := sched.ScheduleTasks(person, tasks)
			if err != nil {
				return err
			}
			if err := client.SaveAs(cfg.Calendar.WorkbookPath); err != nil {
				return err
			}

			ok := color.New(color.FgGreen)
			warn := color.New(color.FgYellow)
			for _, p := range report.Placed {
				cell := p.Placement.Sheet + "!" + grid.Ref(p.Placement.Row, p.Placement.Col)
				ok.Fprintf(cmd.OutOrStdout(), "placed %q at %s (week of %s)\n",
					p.Label, cell, p.Date.Format("2006-01-02"))
			}
			for _, s := range report.Skipped {
				warn.Fprintf(cmd.OutOrStdout(), "skipped %q for %s: %v\n",
					s.Task, s.Date.Format("2006-01-02"), s.Reason)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d placed, %d skipped\n",
				len(report.Placed), len(report.Skipped))
			return nil
		},
	}

	cmd.Flags().StringVarP(&person, "person", "p", "", "person the tasks belong to")
	cmd.Flags().StringArrayVarP(&tasks, "task", "t", nil, "task to schedule (repeatable)")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func newLogCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var person string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Append tasks to the task-log sheet without scheduling them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := openClient(cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			sched, err := newScheduler(cfg, client)
			if err != nil {
				return err
			}
			if err := sched.AppendTaskLog(person, tasks); err != nil {
				return err
			}
			if err := client.SaveAs(cfg.Calendar.WorkbookPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged %d task(s)\n", len(tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&person, "person", "p", "", "person the tasks belong to")
	cmd.Flags().StringArrayVarP(&tasks, "task", "t", nil, "task to log (repeatable)")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}
