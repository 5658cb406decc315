package schedule

import (
	"errors"
	"time"

	"github.com/javajack/gridcal/calendar"
)

var errNoSheets = errors.New("spreadsheet has no sheets")

// PlacedTask records one successful placement and write-back.
type PlacedTask struct {
	Task      string
	Date      time.Time
	Placement calendar.Placement
	Label     string
	DocURL    string // set when a content document was provisioned
}

// SkippedTask records one task the run could not place or write, with the
// reason. Skips never abort the batch.
type SkippedTask struct {
	Task   string
	Date   time.Time
	Reason error
}

// RunReport is the structured outcome of one scheduling run. Runs partially
// succeed by design; the report carries both sides.
type RunReport struct {
	Placed     []PlacedTask
	Skipped    []SkippedTask
	Exclusions calendar.ExclusionSet
}

func (r *RunReport) skip(date time.Time, task string, reason error) {
	r.Skipped = append(r.Skipped, SkippedTask{Task: task, Date: date, Reason: reason})
}

func (r *RunReport) skipAll(date time.Time, tasks []string, reason error) {
	for _, t := range tasks {
		r.skip(date, t, reason)
	}
}
