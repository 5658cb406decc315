// Package grid models a read-mostly snapshot of a remote tabular document:
// a spreadsheet is an ordered set of named sheets, each a ragged 2D matrix of
// cells carrying a display value and an optional hyperlink. It also provides
// the "A1"-style cell reference encoding used to address cells.
package grid

// Cell is an immutable snapshot of one grid position at fetch time.
type Cell struct {
	Value     string // formatted display value
	Raw       any    // raw backend value, if fetched; falls back to Value
	Hyperlink string // empty when the cell carries no link
}

// HasLink reports whether the cell carries a hyperlink.
func (c Cell) HasLink() bool {
	return c.Hyperlink != ""
}

// String returns the cell's display value.
func (c Cell) String() string {
	return c.Value
}
