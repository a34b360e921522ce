package table

import "strings"

// junctionKind says which side of a border line has a column boundary.
type junctionKind int

const (
	junctionBoth   junctionKind = iota // boundary above and below
	junctionTop                        // boundary only in the row above
	junctionBottom                     // boundary only in the row below
)

// glyph returns the style's character for the junction.
func (k junctionKind) glyph(s Style) rune {
	switch k {
	case junctionTop:
		return s.OuterBottomHorizontal
	case junctionBottom:
		return s.OuterTopHorizontal
	default:
		return s.Intersection
	}
}

// segment is a run of span logical columns along a border line, followed by
// the junction that ends it.
type segment struct {
	span int
	kind junctionKind
}

// mergeSpans walks the column partitions of the rows above and below a border
// line and returns the segments between consecutive boundaries. Either side
// may be empty (no row above the table, no row below it). When one side runs
// out first, the rest of the other side is emitted unchanged.
func mergeSpans(top, bottom []int) []segment {
	segments := make([]segment, 0, len(top)+len(bottom))

	i, j := 0, 0
	var topLeft, bottomLeft int
	if len(top) > 0 {
		topLeft = top[0]
	}
	if len(bottom) > 0 {
		bottomLeft = bottom[0]
	}

	for i < len(top) || j < len(bottom) {
		switch {
		case j >= len(bottom):
			segments = append(segments, segment{topLeft, junctionTop})
			i++
			topLeft = at(top, i)
		case i >= len(top):
			segments = append(segments, segment{bottomLeft, junctionBottom})
			j++
			bottomLeft = at(bottom, j)
		case topLeft == bottomLeft:
			segments = append(segments, segment{topLeft, junctionBoth})
			i++
			j++
			topLeft, bottomLeft = at(top, i), at(bottom, j)
		case topLeft < bottomLeft:
			segments = append(segments, segment{topLeft, junctionTop})
			bottomLeft -= topLeft
			i++
			topLeft = at(top, i)
		default:
			segments = append(segments, segment{bottomLeft, junctionBottom})
			topLeft -= bottomLeft
			j++
			bottomLeft = at(bottom, j)
		}
	}
	return segments
}

func at(spans []int, i int) int {
	if i < len(spans) {
		return spans[i]
	}
	return 0
}

// renderBorder writes one horizontal border line: the left edge glyph, a run
// of horizontals per segment with junction glyphs between segments, and the
// right edge glyph. The junction after the last segment is replaced by the
// right edge.
func renderBorder(b *strings.Builder, widths []int, style Style, left, right rune, top, bottom []int) {
	b.WriteRune(left)
	segments := mergeSpans(top, bottom)
	spanned := 0
	for i, seg := range segments {
		if i > 0 {
			b.WriteRune(segments[i-1].kind.glyph(style))
		}
		writeRepeat(b, style.Horizontal, spanWidth(widths, spanned, seg.span))
		spanned += seg.span
	}
	b.WriteRune(right)
}
