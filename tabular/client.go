// Package tabular defines the client contract against the live spreadsheet
// backend: snapshot fetches and cell-level mutations. It ships one concrete
// implementation, Workbook, backed by a local xlsx file through excelize;
// remote backends plug in behind the same interface.
package tabular

import (
	"fmt"

	"github.com/javajack/gridcal/grid"
)

// FetchOptions narrows a spreadsheet fetch.
type FetchOptions struct {
	SheetTitle string // fetch only the sheet with this title (exact, case-insensitive)
	Range      string // "A1:Z100"-style range limit, empty = whole sheet
}

// WriteOptions selects the styling applied by a styled cell write.
type WriteOptions struct {
	Highlight Highlight
	Style     TextStyle
}

// Client is the backend-facing contract. Every call is a blocking round trip
// against the live document; the allocation logic itself only ever touches
// the fetched snapshot.
type Client interface {
	// FetchSpreadsheet returns a snapshot: display values, optional raw
	// values, and a sparse hyperlink overlay keyed by cell reference.
	FetchSpreadsheet(id string, opts FetchOptions) (*grid.Spreadsheet, error)

	// UpdateCellValue writes plain text to a cell addressed as "Sheet!A1"
	// (or "A1" for the first sheet).
	UpdateCellValue(id, cellRange, value string) error

	// UpdateCellWithHyperlink writes display text plus a hyperlink and
	// styling to the cell at the given 0-based position. Styled writes
	// address sheets by their opaque id, not title.
	UpdateCellWithHyperlink(id string, sheetID int64, row, col int, text, url string, opts WriteOptions) error

	// AppendRows appends rows after the last populated row of a sheet.
	AppendRows(id, sheetTitle string, rows [][]string) error

	// ResolveSheetID maps a sheet title to the opaque id styled writes need.
	ResolveSheetID(id, sheetTitle string) (int64, error)
}

// BackendError wraps a transport or storage failure from the backend. It is
// propagated as-is; this layer does not retry.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
