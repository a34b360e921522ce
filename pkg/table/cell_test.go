package table

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/textwidth"
)

func TestNewCellDefaults(t *testing.T) {
	c := NewCell("x")

	if c.ColumnSpan != 1 {
		t.Errorf("ColumnSpan = %d, want 1", c.ColumnSpan)
	}
	if c.Alignment != AlignLeft {
		t.Errorf("Alignment = %v, want %v", c.Alignment, AlignLeft)
	}
	if !c.HasPadding {
		t.Error("HasPadding = false, want true")
	}
}

func TestCellBuildersReturnCopies(t *testing.T) {
	base := NewCell("x")
	spanned := base.WithColumnSpan(3).WithAlignment(AlignRight).WithoutPadding()

	if base.ColumnSpan != 1 || base.Alignment != AlignLeft || !base.HasPadding {
		t.Errorf("base cell modified: %+v", base)
	}
	if spanned.ColumnSpan != 3 || spanned.Alignment != AlignRight || spanned.HasPadding {
		t.Errorf("built cell = %+v", spanned)
	}
}

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want int
	}{
		{"padded", NewCell("abc"), 5},
		{"unpadded", NewCell("abc").WithoutPadding(), 3},
		{"empty padded", NewCell(""), 2},
		{"escape sequences ignored", NewCell("\x1b[1mabc\x1b[0m"), 5},
		{"widest line", NewCell("a\nabcd"), 6},
		{"wide characters", NewCell("日本"), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaddingChangesWidthByTwo(t *testing.T) {
	for _, content := range []string{"", "a", "hello world", "日本", "\x1b[31mred\x1b[0m"} {
		padded := NewCell(content).Width()
		bare := NewCell(content).WithoutPadding().Width()
		if padded-bare != 2 {
			t.Errorf("%q: padded %d - unpadded %d = %d, want 2", content, padded, bare, padded-bare)
		}
	}
}

func TestWrappedContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		maxWidth int
		want     []string
	}{
		{"split on width only", "hello world", 5, []string{"hello", " worl", "d"}},
		{"fits", "abc", 5, []string{"abc"}},
		{"exact fit", "abc", 3, []string{"abc"}},
		{"empty", "", 5, []string{""}},
		{"newline", "ab\ncd", 5, []string{"ab", "cd"}},
		{"trailing newline", "ab\n", 5, []string{"ab", ""}},
		{"blank line", "a\n\nb", 5, []string{"a", "", "b"}},
		{"newline at boundary", "abc\ndef", 3, []string{"abc", "def"}},
		{"escape kept whole", "\x1b[31mabc\x1b[0mdef", 3, []string{"\x1b[31mabc\x1b[0m", "def"}},
		{"escape inside line", "a\x1b[1mbc", 2, []string{"a\x1b[1mb", "c"}},
		{"wide characters never overflow", "日本語", 3, []string{"日", "本", "語"}},
		{"wide characters pair up", "日本語", 4, []string{"日本", "語"}},
		{"zero width", "ab", 0, []string{"", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCell(tt.content).WrappedContent(tt.maxWidth)
			if !slices.Equal(got, tt.want) {
				t.Errorf("WrappedContent(%q, %d) = %q, want %q", tt.content, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestWrappedContentProperties(t *testing.T) {
	contents := []string{
		"This is some really really long text that is going to wrap",
		"line one\nline two is longer\n\nfour",
		"\x1b[1mbold\x1b[0m and \x1b[38;5;196mred\x1b[0m words mixed in",
		"日本語のテキストと English mixed",
		"",
	}

	for _, content := range contents {
		for _, width := range []int{2, 3, 5, 8, 13} {
			lines := NewCell(content).WrappedContent(width)

			for _, line := range lines {
				if w := textwidth.Width(line); w > width {
					t.Errorf("%q at %d: line %q has width %d", content, width, line, w)
				}
			}

			// Joining the lines and the explicit breaks restores the content.
			var parts []string
			for _, paragraph := range strings.Split(content, "\n") {
				parts = append(parts, strings.Join(NewCell(paragraph).WrappedContent(width), ""))
			}
			if got := strings.Join(parts, "\n"); got != content {
				t.Errorf("%q at %d: rejoined = %q", content, width, got)
			}
			if got := strings.Join(lines, ""); got != strings.ReplaceAll(content, "\n", "") {
				t.Errorf("%q at %d: concatenated = %q", content, width, got)
			}

			// Wrapping a wrapped line again changes nothing.
			for _, line := range lines {
				again := NewCell(line).WrappedContent(width)
				if len(again) != 1 || again[0] != line {
					t.Errorf("%q at %d: rewrapping %q = %q", content, width, line, again)
				}
			}
		}
	}
}

func TestWrappedContentLongLines(t *testing.T) {
	const n = 50000
	tests := []struct {
		name    string
		content string
		visible int
	}{
		{"plain", strings.Repeat("a", n), n},
		{"escaped", strings.Repeat("\x1b[1ma\x1b[0m", n/5), n / 5},
		{"wide", strings.Repeat("日", n/2), n},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			lines := NewCell(tt.content).WrappedContent(n)
			tbl := New().WithRow(NewRow().WithCell(NewCell(tt.content))).Render()
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Errorf("wrapping %d visible columns took %v", tt.visible, elapsed)
			}

			if len(lines) != 1 || lines[0] != tt.content {
				t.Errorf("WrappedContent(%d) split an unconstrained line into %d lines", n, len(lines))
			}
			if got := strings.Count(tbl, "\n"); got != 2 {
				t.Errorf("Render() has %d line breaks, want 2", got)
			}
		})
	}
}

func TestWrappedContentLongLinesAtLimit(t *testing.T) {
	lines := NewCell(strings.Repeat("ab", 10000)).WrappedContent(7)
	for i, line := range lines[:len(lines)-1] {
		if got := textwidth.Width(line); got != 7 {
			t.Fatalf("line %d width = %d, want 7", i, got)
		}
	}
	if got := strings.Join(lines, ""); got != strings.Repeat("ab", 10000) {
		t.Error("rejoined lines differ from the content")
	}
}

func BenchmarkWrappedContent(b *testing.B) {
	cell := NewCell(strings.Repeat("\x1b[1mtext\x1b[0m 日本 ", 2000))
	width := cell.Width()
	for b.Loop() {
		cell.WrappedContent(width)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in      string
		want    Alignment
		wantErr bool
	}{
		{"", AlignLeft, false},
		{"left", AlignLeft, false},
		{"Center", AlignCenter, false},
		{"centre", AlignCenter, false},
		{" RIGHT ", AlignRight, false},
		{"top", AlignLeft, true},
	}

	for _, tt := range tests {
		got, err := ParseAlignment(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlignment(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, errors.ErrCodeInvalidAlignment) {
				t.Errorf("ParseAlignment(%q) code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeInvalidAlignment)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAlignmentText(t *testing.T) {
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", a, err)
		}
		var back Alignment
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != a {
			t.Errorf("round trip of %v = %v", a, back)
		}
	}

	if got := Alignment(42).String(); got != "unknown" {
		t.Errorf("Alignment(42).String() = %q, want %q", got, "unknown")
	}
}
