package grid

import "strings"

// Sheet is one named tab of a spreadsheet snapshot. Rows are only as wide as
// the backend returned them, so the cell matrix may be ragged; out-of-range
// access is absent, not an error. One sheet conventionally represents one
// calendar month, with the month name as its title.
type Sheet struct {
	Title string
	ID    int64 // opaque backend sheet id, needed for styled writes
	Cells [][]Cell
}

// Match is one hit from a full-grid scan, with 0-based coordinates.
type Match struct {
	Row  int
	Col  int
	Cell Cell
}

// NewSheet assembles a sheet from the three backend artifacts: a matrix of
// formatted display values, an optional matrix of raw values, and a sparse
// cell-reference → hyperlink overlay. A position with no overlay entry yields
// a cell without a link.
func NewSheet(title string, id int64, formatted [][]string, raw [][]any, links map[string]string) *Sheet {
	cells := make([][]Cell, len(formatted))
	for r, row := range formatted {
		cells[r] = make([]Cell, len(row))
		for c, val := range row {
			cell := Cell{Value: val, Raw: val}
			if raw != nil && r < len(raw) && c < len(raw[r]) {
				cell.Raw = raw[r][c]
			}
			if url, ok := links[Ref(r+1, c+1)]; ok {
				cell.Hyperlink = url
			}
			cells[r][c] = cell
		}
	}
	return &Sheet{Title: title, ID: id, Cells: cells}
}

// Cell returns the cell at the given 0-based position. The second return is
// false when the position lies outside the fetched grid.
func (s *Sheet) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= len(s.Cells) {
		return Cell{}, false
	}
	if col < 0 || col >= len(s.Cells[row]) {
		return Cell{}, false
	}
	return s.Cells[row][col], true
}

// CellByRef returns the cell at an "A1"-style reference.
func (s *Sheet) CellByRef(ref string) (Cell, bool) {
	row, col, err := ParseRef(ref)
	if err != nil {
		return Cell{}, false
	}
	return s.Cell(row, col)
}

// Row returns all cells in a row, or nil when the row is absent.
func (s *Sheet) Row(row int) []Cell {
	if row < 0 || row >= len(s.Cells) {
		return nil
	}
	return s.Cells[row]
}

// Column returns the cells of a column, one entry per fetched row. Rows too
// short to reach the column contribute an empty cell.
func (s *Sheet) Column(col int) []Cell {
	out := make([]Cell, 0, len(s.Cells))
	for _, row := range s.Cells {
		if col < len(row) {
			out = append(out, row[col])
		} else {
			out = append(out, Cell{})
		}
	}
	return out
}

// RowCount returns the number of fetched rows.
func (s *Sheet) RowCount() int {
	return len(s.Cells)
}

// FindCellsWithValue scans the full grid for cells whose display value
// contains the given substring, case-insensitively. Diagnostic helper, not on
// the allocation hot path.
func (s *Sheet) FindCellsWithValue(substr string) []Match {
	needle := strings.ToLower(substr)
	var matches []Match
	for r, row := range s.Cells {
		for c, cell := range row {
			if strings.Contains(strings.ToLower(cell.Value), needle) {
				matches = append(matches, Match{Row: r, Col: c, Cell: cell})
			}
		}
	}
	return matches
}

// FindCellsWithLinks returns every cell carrying a hyperlink.
func (s *Sheet) FindCellsWithLinks() []Match {
	var matches []Match
	for r, row := range s.Cells {
		for c, cell := range row {
			if cell.HasLink() {
				matches = append(matches, Match{Row: r, Col: c, Cell: cell})
			}
		}
	}
	return matches
}
