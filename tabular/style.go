package tabular

// Highlight is an enumerated background highlight for styled cell writes.
// The zero value is the default light-yellow highlight.
type Highlight int

const (
	HighlightYellow Highlight = iota
	HighlightGreen
	HighlightBlue
	HighlightRed
	HighlightOrange
	HighlightPurple
	HighlightNone
)

// RGB is a color with channels in 0..1, matching backend color records.
type RGB struct {
	R, G, B float64
}

var highlightColors = map[Highlight]RGB{
	HighlightYellow: {1.0, 1.0, 0.8},
	HighlightGreen:  {0.8, 1.0, 0.8},
	HighlightBlue:   {0.8, 0.9, 1.0},
	HighlightRed:    {1.0, 0.8, 0.8},
	HighlightOrange: {1.0, 0.9, 0.8},
	HighlightPurple: {0.9, 0.8, 1.0},
}

// Color returns the highlight's fill color. The second return is false for
// HighlightNone, meaning no fill should be applied.
func (h Highlight) Color() (RGB, bool) {
	c, ok := highlightColors[h]
	return c, ok
}

func (h Highlight) String() string {
	switch h {
	case HighlightYellow:
		return "yellow"
	case HighlightGreen:
		return "green"
	case HighlightBlue:
		return "blue"
	case HighlightRed:
		return "red"
	case HighlightOrange:
		return "orange"
	case HighlightPurple:
		return "purple"
	case HighlightNone:
		return "none"
	}
	return "unknown"
}

// TextStyle is an enumerated font preset for styled cell writes. The zero
// value is the default hyperlink look: underlined blue.
type TextStyle int

const (
	StyleDefault TextStyle = iota
	StyleBoldBlue
	StyleNoUnderline
	StyleRedBold
	StyleGreenNoUnderline
	StyleBlackPlain
)

// FontSpec is the concrete font record a TextStyle maps to.
type FontSpec struct {
	Underline bool
	Bold      bool
	Color     RGB
}

var textStyles = map[TextStyle]FontSpec{
	StyleDefault:          {Underline: true, Color: RGB{0, 0, 1}},
	StyleBoldBlue:         {Underline: true, Bold: true, Color: RGB{0, 0, 1}},
	StyleNoUnderline:      {Color: RGB{0, 0, 1}},
	StyleRedBold:          {Underline: true, Bold: true, Color: RGB{1, 0, 0}},
	StyleGreenNoUnderline: {Color: RGB{0, 0.8, 0}},
	StyleBlackPlain:       {},
}

// Font returns the concrete font record for the preset. Unknown values fall
// back to StyleDefault.
func (t TextStyle) Font() FontSpec {
	if f, ok := textStyles[t]; ok {
		return f
	}
	return textStyles[StyleDefault]
}

func (t TextStyle) String() string {
	switch t {
	case StyleDefault:
		return "default"
	case StyleBoldBlue:
		return "bold_blue"
	case StyleNoUnderline:
		return "no_underline"
	case StyleRedBold:
		return "red_bold"
	case StyleGreenNoUnderline:
		return "green_no_underline"
	case StyleBlackPlain:
		return "black_plain"
	}
	return "unknown"
}

// Hex returns the color as an "RRGGBB" hex string for xlsx-style backends.
func (c RGB) Hex() string {
	toByte := func(f float64) int {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return int(f*255 + 0.5)
	}
	const digits = "0123456789ABCDEF"
	out := make([]byte, 6)
	for i, v := range []int{toByte(c.R), toByte(c.G), toByte(c.B)} {
		out[i*2] = digits[v>>4]
		out[i*2+1] = digits[v&0x0F]
	}
	return string(out)
}
