package calendar

import "fmt"

// SheetNotFoundError reports a missing month sheet. The caller skips the
// affected date and continues the batch.
type SheetNotFoundError struct {
	Month string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no sheet found for month %q", e.Month)
}

// DayNotFoundError reports a day number with no anchor cell in its sheet's
// scan window. Recovered locally by the allocation search, surfaced only
// through diagnostics.
type DayNotFoundError struct {
	Day   int
	Sheet string
}

func (e *DayNotFoundError) Error() string {
	return fmt.Sprintf("day %d not found in sheet %q", e.Day, e.Sheet)
}

// AllocationExhaustedError reports that the in-month and rollover phases both
// ran out of free slots. The caller skips the affected task and continues.
type AllocationExhaustedError struct {
	Month    string
	DayStart int
}

func (e *AllocationExhaustedError) Error() string {
	return fmt.Sprintf("no free slot on or after %s %d", e.Month, e.DayStart)
}
