package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/tableau/pkg/errors"
)

const twoCellJSON = `{"rows": [{"cells": [{"content": "A"}, {"content": "BB"}]}]}`

func TestRenderStdin(t *testing.T) {
	stdout, _, err := execute(t, twoCellJSON, "render", "--style", "ascii")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "+---+----+\n| A | BB |\n+---+----+\n"
	if stdout != want {
		t.Errorf("render output =\n%s\nwant\n%s", stdout, want)
	}
}

func TestRenderFileWithFlags(t *testing.T) {
	path := writeFile(t, "table.yaml", `
style: thin
rows:
  - cells:
      - content: abcdef
      - content: abcdef
`)

	stdout, _, err := execute(t, "", "render", path, "-s", "ascii", "-w", "6", "--max-width-at", "1=4")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `+------+----+
| abcd | ab |
| ef   | cd |
|      | ef |
+------+----+
`
	if stdout != want {
		t.Errorf("render output =\n%s\nwant\n%s", stdout, want)
	}
}

func TestRenderBorderFlags(t *testing.T) {
	input := `{"style": "ascii", "rows": [{"cells": [{"content": "a"}]}, {"cells": [{"content": "b"}]}]}`

	stdout, _, err := execute(t, input, "render", "--no-separate-rows", "--no-top-border", "--no-bottom-border")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "| a |\n| b |\n"; stdout != want {
		t.Errorf("render output = %q, want %q", stdout, want)
	}
}

func TestRenderCSVStdin(t *testing.T) {
	stdout, _, err := execute(t, "h1,h2\nx,y\n", "render", "--format", "csv", "--style", "ascii")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "+----+----+\n| h1 | h2 |\n+----+----+\n| x  | y  |\n+----+----+\n"
	if stdout != want {
		t.Errorf("render output =\n%s\nwant\n%s", stdout, want)
	}
}

func TestRenderOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "table.txt")

	stdout, _, err := execute(t, twoCellJSON, "render", "-", "--style", "ascii", "-o", out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "+---+----+\n| A | BB |\n+---+----+\n"; string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
	if !strings.Contains(stdout, out) {
		t.Errorf("stdout %q does not name the output file", stdout)
	}
}

func TestRenderStrict(t *testing.T) {
	empty := `{"rows": []}`

	stdout, stderr, err := execute(t, empty, "render")
	if err != nil {
		t.Fatalf("lenient render: %v", err)
	}
	if stdout != "" {
		t.Errorf("lenient render of empty table wrote %q", stdout)
	}
	if !strings.Contains(stderr, "table has no rows") {
		t.Errorf("stderr %q does not warn about the empty table", stderr)
	}

	_, _, err = execute(t, empty, "render", "--strict")
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidTable {
		t.Errorf("strict render code = %q, want %q", got, errors.ErrCodeInvalidTable)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  errors.Code
	}{
		{"unknown style flag", twoCellJSON, []string{"render", "--style", "dotted"}, errors.ErrCodeInvalidStyle},
		{"unknown style in description", `{"style": "dotted", "rows": []}`, []string{"render"}, errors.ErrCodeInvalidStyle},
		{"bad alignment", `{"rows": [{"cells": [{"content": "a", "align": "top"}]}]}`, []string{"render"}, errors.ErrCodeInvalidAlignment},
		{"bad json", `{"rows": [`, []string{"render"}, errors.ErrCodeInvalidFormat},
		{"bad stdin format", twoCellJSON, []string{"render", "--format", "xml"}, errors.ErrCodeInvalidFormat},
		{"negative max width", twoCellJSON, []string{"render", "--max-width", "-1"}, errors.ErrCodeInvalidInput},
		{"bad column limit", twoCellJSON, []string{"render", "--max-width-at", "one=3"}, errors.ErrCodeInvalidInput},
		{"missing file", "", []string{"render", "/nonexistent/table.json"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestParseColumnLimit(t *testing.T) {
	tests := []struct {
		pair      string
		wantIndex int
		wantWidth int
		wantErr   bool
	}{
		{"0=10", 0, 10, false},
		{" 2 = 30 ", 2, 30, false},
		{"1=0", 1, 0, false},
		{"1", 0, 0, true},
		{"a=1", 0, 0, true},
		{"-1=4", 0, 0, true},
		{"1=wide", 0, 0, true},
		{"1=-4", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.pair, func(t *testing.T) {
			index, width, err := parseColumnLimit(tt.pair)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColumnLimit(%q) error = %v, wantErr %v", tt.pair, err, tt.wantErr)
			}
			if index != tt.wantIndex || width != tt.wantWidth {
				t.Errorf("parseColumnLimit(%q) = %d, %d, want %d, %d", tt.pair, index, width, tt.wantIndex, tt.wantWidth)
			}
		})
	}
}
