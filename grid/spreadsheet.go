package grid

import "strings"

// Spreadsheet is a snapshot of a whole tabular document. Sheet order matches
// the backend's tab order.
type Spreadsheet struct {
	Title  string
	ID     string
	URL    string
	Sheets []*Sheet
}

// Sheet looks a sheet up by title: exact case-insensitive match first, then
// the first case-insensitive substring match. When several titles partially
// match, the first wins; that ambiguity is accepted, not an error.
func (b *Spreadsheet) Sheet(title string) (*Sheet, bool) {
	needle := strings.ToLower(strings.TrimSpace(title))
	for _, s := range b.Sheets {
		if strings.ToLower(s.Title) == needle {
			return s, true
		}
	}
	for _, s := range b.Sheets {
		if strings.Contains(strings.ToLower(s.Title), needle) {
			return s, true
		}
	}
	return nil, false
}

// SheetAt returns the sheet at the given tab index.
func (b *Spreadsheet) SheetAt(i int) (*Sheet, bool) {
	if i < 0 || i >= len(b.Sheets) {
		return nil, false
	}
	return b.Sheets[i], true
}

// SheetTitles returns all sheet titles in tab order.
func (b *Spreadsheet) SheetTitles() []string {
	titles := make([]string, len(b.Sheets))
	for i, s := range b.Sheets {
		titles[i] = s.Title
	}
	return titles
}
