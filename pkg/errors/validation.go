package errors

import (
	"unicode"
)

// maxPathLength bounds file paths accepted from the command line and from
// description documents.
const maxPathLength = 4096

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
//
// The single path "-" (standard input/output) is accepted.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateWidth checks that a configured column width is not negative.
// The name identifies the setting in the error message.
func ValidateWidth(name string, width int) error {
	if width < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative (got %d)", name, width)
	}
	return nil
}
