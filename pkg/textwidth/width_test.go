package textwidth

import (
	"strings"
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"sgr bold", "\x1b[1mbold\x1b[0m", 4},
		{"sgr multiple params", "\x1b[38;5;196mred\x1b[0m", 3},
		{"csi lead byte", "\u009b1mx", 1},
		{"only escapes", "\x1b[0m\x1b[1m", 0},
		{"wide characters", "日本語", 6},
		{"mixed wide and narrow", "a日b", 4},
		{"combining mark", "e\u0301", 1},
		{"multi-line takes widest", "ab\nabcd\nabc", 4},
		{"trailing newline", "abc\n", 3},
		{"carriage return", "abc\r\nab", 3},
		{"escape spanning lines", "\x1b[1mab\ncd\x1b[0m", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\x1b[1mbold\x1b[0m", "bold"},
		{"a\x1b[31mb\x1b[0mc", "abc"},
		{"\x1b(B", ""},
		{"日\x1b[4m本", "日本"},
	}

	for _, tt := range tests {
		if got := Strip(tt.in); got != tt.want {
			t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeRanges(t *testing.T) {
	s := "a\x1b[1mb\x1b[0m"
	got := EscapeRanges(s)
	want := [][2]int{{1, 5}, {6, 10}}

	if len(got) != len(want) {
		t.Fatalf("EscapeRanges(%q) = %v, want %v", s, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EscapeRanges(%q)[%d] = %v, want %v", s, i, got[i], want[i])
		}
	}

	if got := EscapeRanges("no escapes"); got != nil {
		t.Errorf("EscapeRanges(plain) = %v, want nil", got)
	}
}

func TestEscapeRangesCoverStrippedBytes(t *testing.T) {
	s := "\x1b[1mhello\x1b[0m \x1b[38;5;2mworld\x1b[0m"
	hidden := 0
	for _, r := range EscapeRanges(s) {
		if !strings.HasPrefix(s[r[0]:], "\x1b") {
			t.Errorf("range %v does not start at an escape byte", r)
		}
		hidden += r[1] - r[0]
	}
	if got, want := len(s)-hidden, len(Strip(s)); got != want {
		t.Errorf("visible bytes = %d, want %d", got, want)
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'日', 2},
		{'\u0301', 0},
		{'\r', 0},
		{'±', 1}, // ambiguous width counts as one
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestRuneWidthSumsToWidth(t *testing.T) {
	for _, s := range []string{"hello", "日本語", "a日b", "é", "São Paulo"} {
		sum := 0
		for _, r := range s {
			sum += RuneWidth(r)
		}
		if sum != Width(s) {
			t.Errorf("sum of RuneWidth over %q = %d, Width = %d", s, sum, Width(s))
		}
	}
}
