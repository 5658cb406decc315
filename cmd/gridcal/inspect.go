package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javajack/gridcal/calendar"
	"github.com/javajack/gridcal/grid"
	"github.com/javajack/gridcal/internal/config"
	"github.com/javajack/gridcal/tabular"
)

func newInspectCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var month string
	var day int
	var find string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show a day's anchor cell and slot occupancy, or search the grid",
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

			book, err := client.FetchSpreadsheet(cfg.Calendar.SpreadsheetID, tabular.FetchOptions{})
			if err != nil {
				return err
			}

			sheet, ok := book.Sheet(month)
			if !ok {
				return &calendar.SheetNotFoundError{Month: month}
			}

			out := cmd.OutOrStdout()
			if find != "" {
				for _, m := range sheet.FindCellsWithValue(find) {
					fmt.Fprintf(out, "%s!%s: %q\n", sheet.Title, grid.Ref(m.Row+1, m.Col+1), m.Cell.Value)
				}
				return nil
			}

			anchor, ok := calendar.FindDayCell(sheet, day)
			if !ok {
				return &calendar.DayNotFoundError{Day: day, Sheet: sheet.Title}
			}
			fmt.Fprintf(out, "day %d anchored at %s!%s\n", day, sheet.Title, grid.Ref(anchor.Row+1, anchor.Col+1))

			free := color.New(color.FgGreen)
			used := color.New(color.FgRed)
			for _, slot := range calendar.SlotsBelow(sheet, anchor, cfg.Schedule.MaxSlots) {
				ref := grid.Ref(slot.Row, slot.Col)
				if slot.Occupied {
					used.Fprintf(out, "  %s occupied: %q\n", ref, slot.Value)
				} else {
					free.Fprintf(out, "  %s free\n", ref)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month sheet title")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "day number to inspect")
	cmd.Flags().StringVar(&find, "find", "", "search the sheet for cells containing this text")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}
