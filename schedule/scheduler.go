// Package schedule drives the allocation engine across a horizon of weekly
// anchor dates and issues write-back mutations through the tabular client.
// A run is single-threaded and run-to-completion: allocations are strictly
// sequential against one snapshot, coordinated only by the run's exclusion
// set. Separate runs do not coordinate with each other.
package schedule

import (
	"strings"
	"time"

	"github.com/javajack/gridcal/calendar"
	"github.com/javajack/gridcal/grid"
	"github.com/javajack/gridcal/tabular"
)

// Config holds the orchestrator's scheduling knobs.
type Config struct {
	SpreadsheetID string
	TasksSheet    string       // task-log sheet title; first sheet when missing
	Weeks         int          // horizon length in weekly anchors
	Weekday       time.Weekday // anchor weekday
	MaxSlots      int          // usable slots beneath each day anchor
	SplitTasks    bool         // one slot per task instead of one per batch
}

// Scheduler places tasks into calendar slots and writes them back. All
// collaborators are injected; there is no ambient shared client.
type Scheduler struct {
	client tabular.Client
	cfg    Config
	docs   DocumentStore
	labels *LabelTemplate
	now    func() time.Time
}

// New creates a Scheduler around a tabular client.
func New(client tabular.Client, cfg Config, opts ...Option) *Scheduler {
	s := &Scheduler{
		client: client,
		cfg:    cfg,
		labels: NewLabelTemplate(""),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScheduleTasks places tasks on the next cfg.Weeks occurrences of the
// configured weekday.
func (s *Scheduler) ScheduleTasks(person string, tasks []string) (*RunReport, error) {
	dates := calendar.NextWeekdays(s.now(), s.cfg.Weekday, s.cfg.Weeks)
	return s.ScheduleTasksOn(person, tasks, dates)
}

// ScheduleTasksOn places tasks at each anchor date. The snapshot is fetched
// once; one exclusion set spans the whole run, so no two placements in the
// run ever claim the same cell. Allocation always completes before its
// mutation is issued, and a failed mutation never rolls back earlier writes:
// the run partially succeeds and the report records each skip with a reason.
// Only a backend failure on the initial fetch aborts the run.
func (s *Scheduler) ScheduleTasksOn(person string, tasks []string, dates []time.Time) (*RunReport, error) {
	report := &RunReport{}

	cleaned := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return report, nil
	}

	book, err := s.client.FetchSpreadsheet(s.cfg.SpreadsheetID, tabular.FetchOptions{})
	if err != nil {
		return nil, err
	}

	alloc := &calendar.Allocator{Book: book, MaxSlots: s.cfg.MaxSlots}
	excl := calendar.NewExclusionSet()
	report.Exclusions = excl

	for _, date := range dates {
		month := date.Month().String()
		sheet, ok := book.Sheet(month)
		if !ok {
			report.skipAll(date, cleaned, &calendar.SheetNotFoundError{Month: month})
			continue
		}

		if s.cfg.SplitTasks {
			for _, task := range cleaned {
				s.placeOne(report, alloc, excl, sheet, date, person, task, []string{task})
			}
		} else {
			joined := strings.Join(cleaned, " | ")
			s.placeOne(report, alloc, excl, sheet, date, person, joined, cleaned)
		}
	}
	return report, nil
}

// placeOne allocates one slot for the given label text and writes it back.
func (s *Scheduler) placeOne(report *RunReport, alloc *calendar.Allocator, excl calendar.ExclusionSet,
	sheet *grid.Sheet, date time.Time, person, task string, tasks []string) {

	placement, ok := alloc.FindFirstAvailable(sheet, date.Day(), excl)
	if !ok {
		report.skip(date, task, &calendar.AllocationExhaustedError{Month: sheet.Title, DayStart: date.Day()})
		return
	}

	label, err := s.labels.Render(map[string]any{
		"person": person,
		"task":   task,
		"tasks":  tasks,
		"date":   date.Format("2006-01-02"),
	})
	if err != nil {
		report.skip(date, task, err)
		return
	}

	placed := PlacedTask{Task: task, Date: date, Placement: placement, Label: label}
	if s.docs != nil {
		if err := s.writeLinked(placement, label, &placed); err != nil {
			report.skip(date, task, err)
			return
		}
	} else {
		cellRange := placement.Sheet + "!" + grid.Ref(placement.Row, placement.Col)
		if err := s.client.UpdateCellValue(s.cfg.SpreadsheetID, cellRange, label); err != nil {
			report.skip(date, task, err)
			return
		}
	}

	excl.Add(placement.Sheet, placement.Row, placement.Col)
	report.Placed = append(report.Placed, placed)
}

// writeLinked provisions a content document for the slot and claims the cell
// with a hyperlinked, green-highlighted write marking it as linked content.
func (s *Scheduler) writeLinked(placement calendar.Placement, label string, placed *PlacedTask) error {
	doc, err := s.docs.CreateDocument(label, "")
	if err != nil {
		return err
	}
	sheetID, err := s.client.ResolveSheetID(s.cfg.SpreadsheetID, placement.Sheet)
	if err != nil {
		return err
	}
	err = s.client.UpdateCellWithHyperlink(
		s.cfg.SpreadsheetID, sheetID,
		placement.Row-1, placement.Col-1,
		label, doc.URL,
		tabular.WriteOptions{Highlight: tabular.HighlightGreen},
	)
	if err != nil {
		return err
	}
	placed.DocURL = doc.URL
	return nil
}

// AppendTaskLog appends one timestamped row per task to the task-log sheet,
// falling back to the first sheet when the configured one is missing.
func (s *Scheduler) AppendTaskLog(person string, tasks []string) error {
	book, err := s.client.FetchSpreadsheet(s.cfg.SpreadsheetID, tabular.FetchOptions{})
	if err != nil {
		return err
	}

	title := s.cfg.TasksSheet
	if _, ok := book.Sheet(title); !ok {
		first, ok := book.SheetAt(0)
		if !ok {
			return &tabular.BackendError{Op: "append task log", Err: errNoSheets}
		}
		title = first.Title
	}

	stamp := s.now().Format(time.RFC3339)
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		if t = strings.TrimSpace(t); t != "" {
			rows = append(rows, []string{stamp, person, t})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return s.client.AppendRows(s.cfg.SpreadsheetID, title, rows)
}
