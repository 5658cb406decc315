package calendar

import (
	"strings"

	"github.com/javajack/gridcal/grid"
)

// Slot is one task cell beneath a day anchor. Coordinates are 1-based, ready
// for write-back addressing.
type Slot struct {
	Row       int
	Col       int
	Value     string
	Hyperlink string
	Occupied  bool
}

// SlotsBelow returns the n cells directly beneath the anchor, same column,
// increasing row. Cells beyond the fetched grid are returned as empty
// unoccupied slots, so a sheet needs no pre-populated blank rows for its
// slots to be usable.
func SlotsBelow(sheet *grid.Sheet, anchor Pos, n int) []Slot {
	slots := make([]Slot, 0, n)
	for offset := 1; offset <= n; offset++ {
		slot := Slot{Row: anchor.Row + offset + 1, Col: anchor.Col + 1}
		if cell, ok := sheet.Cell(anchor.Row+offset, anchor.Col); ok {
			slot.Value = cell.Value
			slot.Hyperlink = cell.Hyperlink
			slot.Occupied = strings.TrimSpace(cell.Value) != ""
		}
		slots = append(slots, slot)
	}
	return slots
}
