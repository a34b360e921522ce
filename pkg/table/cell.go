package table

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/textwidth"
)

// Alignment is the horizontal placement of a cell's lines within the cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlignment parses "left", "center" (or "centre") and "right",
// case-insensitively. The empty string is left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment %q (must be left, center or right)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Cell is a single piece of content within a row. It may span several of the
// table's logical columns.
type Cell struct {
	Content    string    // Text to display; may contain escape sequences and newlines
	ColumnSpan int       // Number of logical columns covered, expected >= 1
	Alignment  Alignment // Placement of each wrapped line
	HasPadding bool      // One space of padding on each side
}

// NewCell returns a left-aligned, padded cell spanning one column.
func NewCell(content string) Cell {
	return Cell{
		Content:    content,
		ColumnSpan: 1,
		Alignment:  AlignLeft,
		HasPadding: true,
	}
}

// WithColumnSpan sets the number of columns the cell covers.
// Spans below one are accepted and degrade the layout.
func (c Cell) WithColumnSpan(span int) Cell {
	c.ColumnSpan = span
	return c
}

// WithAlignment sets the alignment of the cell's content.
func (c Cell) WithAlignment(a Alignment) Cell {
	c.Alignment = a
	return c
}

// WithoutPadding removes the space on either side of the content.
func (c Cell) WithoutPadding() Cell {
	c.HasPadding = false
	return c
}

// Width returns the width the cell needs to show its content without
// wrapping, padding included.
func (c Cell) Width() int {
	return textwidth.Width(c.Content) + c.padding()
}

func (c Cell) padding() int {
	if c.HasPadding {
		return 2
	}
	return 0
}

// span is the column span with negative values treated as zero.
func (c Cell) span() int {
	return max(c.ColumnSpan, 0)
}

// WrappedContent splits the content into lines no wider than maxWidth.
//
// A line is cut as soon as it reaches maxWidth visible columns, before a wide
// character that would not fit, and at every newline, which is dropped. There
// is no word-boundary awareness. Escape sequences take no width and are never
// cut; one that falls on a boundary stays at the end of the earlier line. At
// least one line is always returned, so empty content yields [""].
func (c Cell) WrappedContent(maxWidth int) []string {
	hidden := make([]bool, len(c.Content))
	for _, r := range textwidth.EscapeRanges(c.Content) {
		for i := r[0]; i < r[1]; i++ {
			hidden[i] = true
		}
	}

	var lines []string
	var buf strings.Builder
	lineWidth := 0
	for i := 0; i < len(c.Content); {
		ch, size := utf8.DecodeRuneInString(c.Content[i:])
		if hidden[i] {
			buf.WriteString(c.Content[i : i+size])
			i += size
			continue
		}
		if ch == '\n' {
			lines = append(lines, buf.String())
			buf.Reset()
			lineWidth = 0
			i += size
			continue
		}

		w := textwidth.RuneWidth(ch)
		if lineWidth >= maxWidth || (lineWidth > 0 && lineWidth+w > maxWidth) {
			lines = append(lines, buf.String())
			buf.Reset()
			lineWidth = 0
		}
		buf.WriteString(c.Content[i : i+size])
		lineWidth += w
		i += size
	}
	return append(lines, buf.String())
}
