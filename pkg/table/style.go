package table

import (
	"maps"
	"slices"

	"github.com/matzehuels/tableau/pkg/errors"
)

// Style is the set of glyphs used to draw a table's borders.
//
// The outer verticals are only used where a border line meets the table's
// left or right edge between two rows. The outer horizontals are the T
// junctions: OuterTopHorizontal opens downward (a column boundary exists only
// below the line), OuterBottomHorizontal opens upward (only above it).
type Style struct {
	TopLeftCorner         rune
	TopRightCorner        rune
	BottomLeftCorner      rune
	BottomRightCorner     rune
	OuterLeftVertical     rune
	OuterRightVertical    rune
	OuterBottomHorizontal rune
	OuterTopHorizontal    rune
	Intersection          rune
	Vertical              rune
	Horizontal            rune
}

// ASCII draws borders with plain ASCII characters.
//
//	+-------+-------+
//	| left  | right |
//	+-------+-------+
func ASCII() Style {
	return Style{
		TopLeftCorner:         '+',
		TopRightCorner:        '+',
		BottomLeftCorner:      '+',
		BottomRightCorner:     '+',
		OuterLeftVertical:     '+',
		OuterRightVertical:    '+',
		OuterBottomHorizontal: '+',
		OuterTopHorizontal:    '+',
		Intersection:          '+',
		Vertical:              '|',
		Horizontal:            '-',
	}
}

// Thin draws borders with single box-drawing lines and square corners.
//
//	┌───────┬───────┐
//	│ left  │ right │
//	└───────┴───────┘
func Thin() Style {
	return Style{
		TopLeftCorner:         '┌',
		TopRightCorner:        '┐',
		BottomLeftCorner:      '└',
		BottomRightCorner:     '┘',
		OuterLeftVertical:     '├',
		OuterRightVertical:    '┤',
		OuterBottomHorizontal: '┴',
		OuterTopHorizontal:    '┬',
		Intersection:          '┼',
		Vertical:              '│',
		Horizontal:            '─',
	}
}

// Rounded is Thin with rounded corners. It is the default style.
//
//	╭───────┬───────╮
//	│ left  │ right │
//	╰───────┴───────╯
func Rounded() Style {
	s := Thin()
	s.TopLeftCorner = '╭'
	s.TopRightCorner = '╮'
	s.BottomLeftCorner = '╰'
	s.BottomRightCorner = '╯'
	return s
}

// Heavy draws every border with double lines.
//
//	╔═══════╦═══════╗
//	║ left  ║ right ║
//	╚═══════╩═══════╝
func Heavy() Style {
	return Style{
		TopLeftCorner:         '╔',
		TopRightCorner:        '╗',
		BottomLeftCorner:      '╚',
		BottomRightCorner:     '╝',
		OuterLeftVertical:     '╠',
		OuterRightVertical:    '╣',
		OuterBottomHorizontal: '╩',
		OuterTopHorizontal:    '╦',
		Intersection:          '╬',
		Vertical:              '║',
		Horizontal:            '═',
	}
}

// Fancy uses double-line corners and T junctions with single inner lines.
//
//	╔───────╦───────╗
//	│ left  │ right │
//	╚───────╩───────╝
func Fancy() Style {
	s := Heavy()
	s.Intersection = '┼'
	s.Vertical = '│'
	s.Horizontal = '─'
	return s
}

// Empty draws every border glyph as a space, keeping the layout but hiding
// the lines.
func Empty() Style {
	return Style{
		TopLeftCorner:         ' ',
		TopRightCorner:        ' ',
		BottomLeftCorner:      ' ',
		BottomRightCorner:     ' ',
		OuterLeftVertical:     ' ',
		OuterRightVertical:    ' ',
		OuterBottomHorizontal: ' ',
		OuterTopHorizontal:    ' ',
		Intersection:          ' ',
		Vertical:              ' ',
		Horizontal:            ' ',
	}
}

// Style names accepted by StyleByName.
const (
	StyleASCII   = "ascii"
	StyleThin    = "thin"
	StyleRounded = "rounded"
	StyleHeavy   = "heavy"
	StyleFancy   = "fancy"
	StyleEmpty   = "empty"
)

// DefaultStyleName names the style a new table starts with.
const DefaultStyleName = StyleRounded

var presets = map[string]func() Style{
	StyleASCII:   ASCII,
	StyleThin:    Thin,
	StyleRounded: Rounded,
	StyleHeavy:   Heavy,
	StyleFancy:   Fancy,
	StyleEmpty:   Empty,
}

// StyleNames returns the names of the preset styles in sorted order.
func StyleNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// StyleByName returns the preset style with the given name.
func StyleByName(name string) (Style, error) {
	preset, ok := presets[name]
	if !ok {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (available: %v)", name, StyleNames())
	}
	return preset(), nil
}

// NameOf returns the preset name of s, or "" when s is a custom style.
func NameOf(s Style) string {
	for _, name := range StyleNames() {
		if presets[name]() == s {
			return name
		}
	}
	return ""
}
