package calendar

import "github.com/javajack/gridcal/grid"

// Placement is the result of a slot allocation: the sheet to write to and
// 1-based coordinates. It is consumed immediately by a write-back mutation
// and never stored; durability lives entirely in the backend.
type Placement struct {
	Sheet string
	Row   int
	Col   int
}

type slotKey struct {
	sheet string
	row   int
	col   int
}

// ExclusionSet remembers slots already claimed within one scheduling run, so
// that placing several tasks against a single snapshot never picks the same
// physical cell twice. It substitutes for re-fetching backend state between
// placements.
type ExclusionSet map[slotKey]struct{}

// NewExclusionSet returns an empty run-scoped exclusion set.
func NewExclusionSet() ExclusionSet {
	return make(ExclusionSet)
}

// Add marks a slot as claimed. Coordinates are 1-based.
func (x ExclusionSet) Add(sheet string, row, col int) {
	x[slotKey{sheet, row, col}] = struct{}{}
}

// Contains reports whether the slot has been claimed in this run.
func (x ExclusionSet) Contains(sheet string, row, col int) bool {
	_, ok := x[slotKey{sheet, row, col}]
	return ok
}

// Len returns the number of claimed slots.
func (x ExclusionSet) Len() int {
	return len(x)
}

// Day numbers never exceed this; the in-month search stops here.
const lastCalendarDay = 31

// Allocator runs the first-fit slot search over an in-memory spreadsheet
// snapshot. MaxSlots bounds how many cells beneath each day anchor count as
// usable slots.
type Allocator struct {
	Book     *grid.Spreadsheet
	MaxSlots int
}

// FindFirstAvailable finds the first unoccupied, unexcluded slot at or after
// dayStart in the given month sheet. The search is day-major, offset-minor:
// every slot of day N is tried before any slot of day N+1. Days without an
// anchor cell are skipped, since sparse calendars may have no row for a day.
// When the month is exhausted the search rolls over once into the next
// month's sheet (December rolls to January of the following year) starting
// from day 1. The second return is false when both phases come up empty;
// callers treat that as a soft failure, never fatal to the batch.
func (a *Allocator) FindFirstAvailable(sheet *grid.Sheet, dayStart int, excl ExclusionSet) (Placement, bool) {
	if p, ok := a.scanMonth(sheet, dayStart, excl); ok {
		return p, true
	}

	next, ok := NextMonth(sheet.Title)
	if !ok {
		return Placement{}, false
	}
	nextSheet, ok := a.Book.Sheet(next)
	if !ok {
		return Placement{}, false
	}
	return a.scanMonth(nextSheet, 1, excl)
}

// scanMonth runs the day-major first-fit search over one sheet.
func (a *Allocator) scanMonth(sheet *grid.Sheet, dayStart int, excl ExclusionSet) (Placement, bool) {
	for day := dayStart; day <= lastCalendarDay; day++ {
		anchor, ok := FindDayCell(sheet, day)
		if !ok {
			continue
		}
		for _, slot := range SlotsBelow(sheet, anchor, a.MaxSlots) {
			if slot.Occupied {
				continue
			}
			if excl.Contains(sheet.Title, slot.Row, slot.Col) {
				continue
			}
			return Placement{Sheet: sheet.Title, Row: slot.Row, Col: slot.Col}, true
		}
	}
	return Placement{}, false
}
