package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/javajack/gridcal/calendar"
	"github.com/javajack/gridcal/grid"
	"github.com/javajack/gridcal/tabular"
)

// marchBook builds a workbook whose March sheet anchors day 10 at C5 with
// five empty slots beneath it.
func marchBook(t *testing.T) *tabular.Workbook {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "March"))
	require.NoError(t, f.SetCellValue("March", "C5", "10"))
	return tabular.NewWorkbook(f)
}

func testConfig() Config {
	return Config{
		SpreadsheetID: "book-1",
		TasksSheet:    "Tasks",
		Weeks:         1,
		Weekday:       time.Monday,
		MaxSlots:      5,
		SplitTasks:    true,
	}
}

func march10() time.Time {
	return time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func TestScheduler_PerTaskPlacement(t *testing.T) {
	w := marchBook(t)
	defer w.Close()

	s := New(w, testConfig())
	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog", "Post update"}, []time.Time{march10()})
	require.NoError(t, err)
	require.Len(t, report.Placed, 2)
	assert.Empty(t, report.Skipped)

	// Anchor at C5, so the tasks land in C6 and C7.
	assert.Equal(t, calendar.Placement{Sheet: "March", Row: 6, Col: 3}, report.Placed[0].Placement)
	assert.Equal(t, calendar.Placement{Sheet: "March", Row: 7, Col: 3}, report.Placed[1].Placement)

	v, err := w.File().GetCellValue("March", "C6")
	require.NoError(t, err)
	assert.Equal(t, "Alice: Write blog", v)
	v, err = w.File().GetCellValue("March", "C7")
	require.NoError(t, err)
	assert.Equal(t, "Alice: Post update", v)

	assert.Equal(t, 2, report.Exclusions.Len())
	assert.True(t, report.Exclusions.Contains("March", 6, 3))
	assert.True(t, report.Exclusions.Contains("March", 7, 3))
}

func TestScheduler_BatchPlacement(t *testing.T) {
	w := marchBook(t)
	defer w.Close()

	cfg := testConfig()
	cfg.SplitTasks = false
	s := New(w, cfg)

	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog", "Post update"}, []time.Time{march10()})
	require.NoError(t, err)
	require.Len(t, report.Placed, 1)

	v, err := w.File().GetCellValue("March", "C6")
	require.NoError(t, err)
	assert.Equal(t, "Alice: Write blog | Post update", v)
}

func TestScheduler_SkipsBlankTasks(t *testing.T) {
	w := marchBook(t)
	defer w.Close()

	s := New(w, testConfig())
	report, err := s.ScheduleTasksOn("Alice", []string{"  ", ""}, []time.Time{march10()})
	require.NoError(t, err)
	assert.Empty(t, report.Placed)
	assert.Empty(t, report.Skipped)
}

func TestScheduler_MissingMonthSheetSkipsDate(t *testing.T) {
	w := marchBook(t)
	defer w.Close()

	s := New(w, testConfig())
	april := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog", "Post update"},
		[]time.Time{april, march10()})
	require.NoError(t, err)

	// April has no sheet: both tasks skipped for that date, March still runs.
	require.Len(t, report.Skipped, 2)
	var snf *calendar.SheetNotFoundError
	assert.ErrorAs(t, report.Skipped[0].Reason, &snf)
	assert.Equal(t, "April", snf.Month)
	assert.Len(t, report.Placed, 2)
}

func TestScheduler_AllocationExhaustedSkipsTask(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "March"))
	require.NoError(t, f.SetCellValue("March", "A1", "10"))
	require.NoError(t, f.SetCellValue("March", "A2", "taken"))
	w := tabular.NewWorkbook(f)
	defer w.Close()

	cfg := testConfig()
	cfg.MaxSlots = 1
	s := New(w, cfg)

	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog"}, []time.Time{march10()})
	require.NoError(t, err)
	assert.Empty(t, report.Placed)
	require.Len(t, report.Skipped, 1)
	var exhausted *calendar.AllocationExhaustedError
	assert.ErrorAs(t, report.Skipped[0].Reason, &exhausted)
}

func TestScheduler_ExclusionSpansDates(t *testing.T) {
	// Two anchor dates in the same month must never claim the same cell,
	// even though the snapshot is not re-fetched between placements.
	w := marchBook(t)
	defer w.Close()

	s := New(w, testConfig())
	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog"},
		[]time.Time{march10(), march10()})
	require.NoError(t, err)
	require.Len(t, report.Placed, 2)
	assert.NotEqual(t, report.Placed[0].Placement, report.Placed[1].Placement)
}

func TestScheduler_ScheduleTasks_UsesClock(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "August"))
	require.NoError(t, f.SetCellValue("August", "B2", "31"))
	w := tabular.NewWorkbook(f)
	defer w.Close()

	// Wednesday 2026-08-26: the next Monday is August 31.
	clock := func() time.Time { return time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC) }
	s := New(w, testConfig(), WithClock(clock))

	report, err := s.ScheduleTasks("Alice", []string{"Write blog"})
	require.NoError(t, err)
	require.Len(t, report.Placed, 1)
	assert.Equal(t, calendar.Placement{Sheet: "August", Row: 3, Col: 2}, report.Placed[0].Placement)
}

func TestScheduler_CustomLabelTemplate(t *testing.T) {
	w := marchBook(t)
	defer w.Close()

	s := New(w, testConfig(), WithLabelTemplate(NewLabelTemplate(`task + " (" + person + ")"`)))
	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog"}, []time.Time{march10()})
	require.NoError(t, err)
	require.Len(t, report.Placed, 1)

	v, err := w.File().GetCellValue("March", "C6")
	require.NoError(t, err)
	assert.Equal(t, "Write blog (Alice)", v)
}

// fakeDocs provisions documents with predictable URLs.
type fakeDocs struct {
	created []string
}

func (d *fakeDocs) CreateDocument(title, content string) (Document, error) {
	d.created = append(d.created, title)
	return Document{ID: "doc-1", Title: title, URL: "https://docs.example.com/doc-1"}, nil
}

func TestScheduler_DocumentStoreLinksSlot(t *testing.T) {
	w := marchBook(t)
	defer w.Close()

	docs := &fakeDocs{}
	s := New(w, testConfig(), WithDocumentStore(docs))

	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog"}, []time.Time{march10()})
	require.NoError(t, err)
	require.Len(t, report.Placed, 1)
	assert.Equal(t, "https://docs.example.com/doc-1", report.Placed[0].DocURL)
	assert.Equal(t, []string{"Alice: Write blog"}, docs.created)

	v, err := w.File().GetCellValue("March", "C6")
	require.NoError(t, err)
	assert.Equal(t, "Alice: Write blog", v)

	ok, url, err := w.File().GetCellHyperLink("March", "C6")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://docs.example.com/doc-1", url)
}

// failingClient fails on demand to exercise error propagation.
type failingClient struct {
	book     *grid.Spreadsheet
	fetchErr error
	writeErr error
	writes   int
}

func (c *failingClient) FetchSpreadsheet(id string, opts tabular.FetchOptions) (*grid.Spreadsheet, error) {
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	return c.book, nil
}

func (c *failingClient) UpdateCellValue(id, cellRange, value string) error {
	c.writes++
	return c.writeErr
}

func (c *failingClient) UpdateCellWithHyperlink(id string, sheetID int64, row, col int, text, url string, opts tabular.WriteOptions) error {
	return c.writeErr
}

func (c *failingClient) AppendRows(id, sheetTitle string, rows [][]string) error {
	return nil
}

func (c *failingClient) ResolveSheetID(id, sheetTitle string) (int64, error) {
	return 0, nil
}

func TestScheduler_FetchFailureAbortsRun(t *testing.T) {
	backendDown := &tabular.BackendError{Op: "fetch", Err: errors.New("unreachable")}
	s := New(&failingClient{fetchErr: backendDown}, testConfig())

	_, err := s.ScheduleTasksOn("Alice", []string{"Write blog"}, []time.Time{march10()})
	assert.ErrorIs(t, err, backendDown)
}

func TestScheduler_WriteFailureSkipsWithoutRollback(t *testing.T) {
	book := &grid.Spreadsheet{Sheets: []*grid.Sheet{
		grid.NewSheet("March", 0, [][]string{{"10"}}, nil, nil),
	}}
	client := &failingClient{book: book, writeErr: errors.New("write rejected")}
	s := New(client, testConfig())

	report, err := s.ScheduleTasksOn("Alice", []string{"Write blog", "Post update"}, []time.Time{march10()})
	require.NoError(t, err)
	assert.Empty(t, report.Placed)
	require.Len(t, report.Skipped, 2)
	assert.Equal(t, 2, client.writes)
	// Failed writes never enter the exclusion set.
	assert.Equal(t, 0, report.Exclusions.Len())
}

func TestScheduler_AppendTaskLog(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "March"))
	_, err := f.NewSheet("Tasks")
	require.NoError(t, err)
	w := tabular.NewWorkbook(f)
	defer w.Close()

	clock := func() time.Time { return time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC) }
	s := New(w, testConfig(), WithClock(clock))

	require.NoError(t, s.AppendTaskLog("Alice", []string{"Write blog", " ", "Post update"}))

	v, err := w.File().GetCellValue("Tasks", "A1")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28T10:00:00Z", v)
	v, err = w.File().GetCellValue("Tasks", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)
	v, err = w.File().GetCellValue("Tasks", "C2")
	require.NoError(t, err)
	assert.Equal(t, "Post update", v)
}

func TestScheduler_AppendTaskLog_FallsBackToFirstSheet(t *testing.T) {
	w := marchBook(t)
	defer w.Close()

	s := New(w, testConfig())
	require.NoError(t, s.AppendTaskLog("Alice", []string{"Write blog"}))

	// March already has content down to row 5, so the log lands at row 6.
	v, err := w.File().GetCellValue("March", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Alice", v)
}
