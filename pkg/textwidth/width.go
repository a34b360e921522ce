// Package textwidth measures how many terminal columns a string occupies.
//
// Escape sequences (SGR colouring, cursor movement and similar) are invisible
// once printed, so they are removed before measuring. The remaining text is
// measured with go-runewidth: East Asian wide characters count as two columns,
// combining marks as zero, everything else as one.
//
//	textwidth.Width("\x1b[1mbold\x1b[0m") // 4
//	textwidth.Width("日本")                // 4
//	textwidth.Width("ab\nabcd")           // 4 (widest line)
package textwidth

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pattern matches a single escape sequence: an ESC or CSI lead byte, optional
// intermediate punctuation, an optional numeric parameter list and one final
// command byte.
var Pattern = regexp.MustCompile(`[\x1b\x9b][\[()#;?]*(?:[0-9]{1,4}(?:;[0-9]{0,4})*)?[0-9A-PRZcf-nqry=><]`)

// condition is fixed so widths do not depend on the caller's locale
// (RUNEWIDTH_EASTASIAN, LC_ALL, ...). Ambiguous-width runes count as one.
var condition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Strip returns s with every escape sequence removed.
func Strip(s string) string {
	if !strings.ContainsAny(s, "\x1b\u009b") {
		return s
	}
	return Pattern.ReplaceAllString(s, "")
}

// EscapeRanges returns the byte ranges [start, end) of the escape sequences
// in s, in order of appearance.
func EscapeRanges(s string) [][2]int {
	matches := Pattern.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return nil
	}
	ranges := make([][2]int, len(matches))
	for i, m := range matches {
		ranges[i] = [2]int{m[0], m[1]}
	}
	return ranges
}

// Width returns the display width of s. For multi-line input it returns the
// width of the widest line.
func Width(s string) int {
	s = Strip(s)
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		widest = max(widest, condition.StringWidth(line))
	}
	return widest
}

// RuneWidth returns the display width of a single rune under the same
// locale-independent rules as Width. Control characters are zero wide.
func RuneWidth(r rune) int {
	return condition.RuneWidth(r)
}
