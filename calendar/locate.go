// Package calendar implements the grid-addressing core: locating the anchor
// cell for a calendar day inside a month sheet, enumerating the slot cells
// beneath it, and allocating the first free slot across a scheduling horizon
// with cross-month rollover.
package calendar

import (
	"strconv"
	"strings"

	"github.com/javajack/gridcal/grid"
)

// Real calendars are small grids; the anchor search never needs to look
// beyond this window.
const (
	maxScanRows = 40
	maxScanCols = 40
)

// Pos is a 0-based grid position.
type Pos struct {
	Row int
	Col int
}

// FindDayCell scans the sheet in row-major order for the first cell whose
// trimmed value parses as the target day number. Non-numeric cells are
// skipped. The scan order makes duplicate day numbers resolve to the
// top-most, left-most match; a malformed grid is "first match wins", not an
// error. The second return is false when no cell matches inside the window.
func FindDayCell(sheet *grid.Sheet, day int) (Pos, bool) {
	rows := len(sheet.Cells)
	if rows > maxScanRows {
		rows = maxScanRows
	}
	for r := 0; r < rows; r++ {
		cols := len(sheet.Cells[r])
		if cols > maxScanCols {
			cols = maxScanCols
		}
		for c := 0; c < cols; c++ {
			n, err := strconv.Atoi(strings.TrimSpace(sheet.Cells[r][c].Value))
			if err != nil {
				continue
			}
			if n == day {
				return Pos{Row: r, Col: c}, true
			}
		}
	}
	return Pos{}, false
}
