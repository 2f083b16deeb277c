package errors

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// ValidateText checks analysis input against a byte-length guard. A
// maxLength of zero disables the guard. Any byte sequence is otherwise
// accepted, including the empty string.
func ValidateText(text string, maxLength int) error {
	if maxLength < 0 {
		return New(ErrCodeInvalidOptions, "max length cannot be negative")
	}
	if maxLength > 0 && len(text) > maxLength {
		return New(ErrCodeInputTooLarge, "text is %d bytes (max %d)", len(text), maxLength)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
// The comparison is case-sensitive.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateUTF8 reports text that is not valid UTF-8. Analysis works on
// bytes and never requires it, but hosts that echo text back as JSON do.
func ValidateUTF8(text string) error {
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidInput, "text is not valid UTF-8")
	}
	return nil
}
