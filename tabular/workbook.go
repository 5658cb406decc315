package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/javajack/gridcal/grid"
)

// Workbook implements Client against a local xlsx workbook through excelize.
// The spreadsheet id is ignored; the workbook itself is the document.
type Workbook struct {
	file *excelize.File
	name string

	mu sync.Mutex // excelize files are not safe for concurrent mutation
}

// NewWorkbook wraps an excelize file as a Client.
func NewWorkbook(f *excelize.File) *Workbook {
	return &Workbook{file: f, name: "workbook"}
}

// OpenWorkbook opens an xlsx file as a Client.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &BackendError{Op: "open workbook", Err: err}
	}
	return &Workbook{file: f, name: filepath.Base(path)}, nil
}

// File exposes the underlying excelize file, mainly for test fixtures.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// FetchSpreadsheet builds a grid snapshot from the workbook: formatted values
// per sheet plus a sparse hyperlink overlay keyed by cell reference.
func (w *Workbook) FetchSpreadsheet(id string, opts FetchOptions) (*grid.Spreadsheet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	book := &grid.Spreadsheet{Title: w.name, ID: id}
	for _, title := range w.file.GetSheetList() {
		if opts.SheetTitle != "" && !strings.EqualFold(opts.SheetTitle, title) {
			continue
		}

		rows, err := w.file.GetRows(title)
		if err != nil {
			return nil, &BackendError{Op: fmt.Sprintf("read sheet %q", title), Err: err}
		}
		rowOff, colOff := 0, 0
		if opts.Range != "" {
			rows, rowOff, colOff = clipToRange(rows, opts.Range)
		}

		// The overlay is keyed by position within the snapshot, so offset
		// back to absolute cells when the fetch was range-limited.
		links := make(map[string]string)
		for r, row := range rows {
			for c := range row {
				ok, url, err := w.file.GetCellHyperLink(title, grid.Ref(r+1+rowOff, c+1+colOff))
				if err == nil && ok {
					links[grid.Ref(r+1, c+1)] = url
				}
			}
		}

		idx, err := w.file.GetSheetIndex(title)
		if err != nil {
			return nil, &BackendError{Op: fmt.Sprintf("resolve sheet %q", title), Err: err}
		}
		book.Sheets = append(book.Sheets, grid.NewSheet(title, int64(idx), rows, nil, links))
	}
	return book, nil
}

// UpdateCellValue writes plain text to a "Sheet!A1" or "A1" cell range.
func (w *Workbook) UpdateCellValue(id, cellRange, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	sheet, cell, err := w.splitRange(cellRange)
	if err != nil {
		return err
	}
	if err := w.file.SetCellValue(sheet, cell, value); err != nil {
		return &BackendError{Op: fmt.Sprintf("write %s!%s", sheet, cell), Err: err}
	}
	return nil
}

// UpdateCellWithHyperlink writes display text, a hyperlink, and the selected
// highlight and font presets to the cell at a 0-based position.
func (w *Workbook) UpdateCellWithHyperlink(id string, sheetID int64, row, col int, text, url string, opts WriteOptions) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	sheet := w.file.GetSheetName(int(sheetID))
	if sheet == "" {
		return &BackendError{Op: "resolve sheet id", Err: fmt.Errorf("no sheet with id %d", sheetID)}
	}

	cell := grid.Ref(row+1, col+1)
	if err := w.file.SetCellValue(sheet, cell, text); err != nil {
		return &BackendError{Op: fmt.Sprintf("write %s!%s", sheet, cell), Err: err}
	}
	if url != "" {
		if err := w.file.SetCellHyperLink(sheet, cell, url, "External"); err != nil {
			return &BackendError{Op: fmt.Sprintf("link %s!%s", sheet, cell), Err: err}
		}
	}

	styleID, err := w.file.NewStyle(buildStyle(opts))
	if err != nil {
		return &BackendError{Op: "build style", Err: err}
	}
	if err := w.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
		return &BackendError{Op: fmt.Sprintf("style %s!%s", sheet, cell), Err: err}
	}
	return nil
}

// AppendRows writes rows after the last populated row of the sheet.
func (w *Workbook) AppendRows(id, sheetTitle string, rows [][]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	sheet, ok := w.resolveTitle(sheetTitle)
	if !ok {
		return &BackendError{Op: "append rows", Err: fmt.Errorf("sheet %q not found", sheetTitle)}
	}

	existing, err := w.file.GetRows(sheet)
	if err != nil {
		return &BackendError{Op: fmt.Sprintf("read sheet %q", sheet), Err: err}
	}
	start := len(existing) + 1
	for i, row := range rows {
		for j, val := range row {
			if err := w.file.SetCellValue(sheet, grid.Ref(start+i, j+1), val); err != nil {
				return &BackendError{Op: fmt.Sprintf("append row %d", start+i), Err: err}
			}
		}
	}
	return nil
}

// ResolveSheetID maps a sheet title (case-insensitive) to its index.
func (w *Workbook) ResolveSheetID(id, sheetTitle string) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sheet, ok := w.resolveTitle(sheetTitle)
	if !ok {
		return 0, &BackendError{Op: "resolve sheet id", Err: fmt.Errorf("sheet %q not found", sheetTitle)}
	}
	idx, err := w.file.GetSheetIndex(sheet)
	if err != nil {
		return 0, &BackendError{Op: "resolve sheet id", Err: err}
	}
	return int64(idx), nil
}

// Write serializes the workbook to a writer.
func (w *Workbook) Write(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Write(out)
}

// SaveAs writes the workbook to a file.
func (w *Workbook) SaveAs(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.SaveAs(path)
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// resolveTitle finds the actual sheet name for a case-insensitive title.
func (w *Workbook) resolveTitle(title string) (string, bool) {
	for _, name := range w.file.GetSheetList() {
		if strings.EqualFold(name, title) {
			return name, true
		}
	}
	return "", false
}

// splitRange splits "Sheet!A1" into sheet and cell, defaulting to the first
// sheet when no sheet prefix is present.
func (w *Workbook) splitRange(cellRange string) (sheet, cell string, err error) {
	cell = cellRange
	if idx := strings.LastIndex(cellRange, "!"); idx >= 0 {
		name := strings.Trim(cellRange[:idx], "'")
		cell = cellRange[idx+1:]
		resolved, ok := w.resolveTitle(name)
		if !ok {
			return "", "", &BackendError{Op: "write cell", Err: fmt.Errorf("sheet %q not found", name)}
		}
		sheet = resolved
	} else {
		list := w.file.GetSheetList()
		if len(list) == 0 {
			return "", "", &BackendError{Op: "write cell", Err: fmt.Errorf("workbook has no sheets")}
		}
		sheet = list[0]
	}
	if _, _, err := grid.ParseRef(cell); err != nil {
		return "", "", err
	}
	return sheet, cell, nil
}

// buildStyle maps the enumerated presets onto an excelize style.
func buildStyle(opts WriteOptions) *excelize.Style {
	font := opts.Style.Font()
	style := &excelize.Style{
		Font: &excelize.Font{
			Bold:  font.Bold,
			Color: font.Color.Hex(),
		},
	}
	if font.Underline {
		style.Font.Underline = "single"
	}
	if fill, ok := opts.Highlight.Color(); ok {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill.Hex()}}
	}
	return style
}

// clipToRange trims a row matrix to an "A1:C5"-style rectangle and returns
// the 0-based row/column offsets of the rectangle's top-left corner.
func clipToRange(rows [][]string, rangeRef string) ([][]string, int, int) {
	parts := strings.SplitN(rangeRef, ":", 2)
	if len(parts) != 2 {
		return rows, 0, 0
	}
	r1, c1, err1 := grid.ParseRef(parts[0])
	r2, c2, err2 := grid.ParseRef(parts[1])
	if err1 != nil || err2 != nil {
		return rows, 0, 0
	}
	if r2 >= len(rows) {
		r2 = len(rows) - 1
	}
	if r1 > r2 {
		return nil, r1, c1
	}
	out := make([][]string, 0, r2-r1+1)
	for _, row := range rows[r1 : r2+1] {
		lo, hi := c1, c2+1
		if lo >= len(row) {
			out = append(out, nil)
			continue
		}
		if hi > len(row) {
			hi = len(row)
		}
		out = append(out, row[lo:hi])
	}
	return out, r1, c1
}
