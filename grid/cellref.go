package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRef is returned when a cell reference cannot be parsed.
var ErrInvalidRef = errors.New("invalid cell reference")

// Ref formats 1-based row/column indices as an "A1"-style reference.
// Ref(1, 1) → "A1", Ref(10, 27) → "AA10".
func Ref(row1b, col1b int) string {
	return ColToName(col1b-1) + strconv.Itoa(row1b)
}

// ParseRef parses an "A1"-style reference into 0-based row/column indices.
// The leading alphabetic run is the column, the trailing digit run is the
// 1-based row. Callers that need 1-based display coordinates must convert;
// everything inside the grid model is 0-based.
func ParseRef(ref string) (row0b, col0b int, err error) {
	s := strings.TrimSpace(ref)
	if s == "" {
		return 0, 0, fmt.Errorf("%w: empty", ErrInvalidRef)
	}

	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	col, err := NameToCol(s[:i])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	rowNum := 0
	for _, ch := range s[i:] {
		if ch < '0' || ch > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
		}
		rowNum = rowNum*10 + int(ch-'0')
	}
	if rowNum < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}

	return rowNum - 1, col, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// ColToName converts a 0-based column index to column letters.
// 0→"A", 25→"Z", 26→"AA", 51→"AZ", 52→"BA".
func ColToName(col int) string {
	result := ""
	col++ // bijective base-26 works on 1-based values
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts column letters to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26.
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col - 1, nil
}
