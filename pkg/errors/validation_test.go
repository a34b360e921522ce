package errors

import (
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "table.toml", false},
		{"nested relative", "tables/cities.json", false},
		{"absolute", "/tmp/table.yaml", false},
		{"stdin", "-", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", maxPathLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateWidth(t *testing.T) {
	tests := []struct {
		width   int
		wantErr bool
	}{
		{0, false},
		{40, false},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateWidth("max column width", tt.width)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateWidth(%d) error = %v, wantErr %v", tt.width, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidateWidth(%d) code = %v, want %v", tt.width, GetCode(err), ErrCodeInvalidInput)
		}
	}
}
