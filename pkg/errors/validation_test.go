package errors

import (
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		wantCode  Code
	}{
		{"Empty", "", 10, ""},
		{"AtLimit", "abcde", 5, ""},
		{"OverLimit", "abcdef", 5, ErrCodeInputTooLarge},
		{"Unlimited", strings.Repeat("x", 10000), 0, ""},
		{"NegativeLimit", "a", -1, ErrCodeInvalidOptions},
		{"MultiByteCountsBytes", "ïï", 3, ErrCodeInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text, tt.maxLength)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateText() = %v, want nil", err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateText() = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"json", "svg", "dot"}
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"svg", false},
		{"dot", false},
		{"SVG", true}, // case-sensitive
		{"png", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format, allowed)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) returned wrong error code: %v", tt.format, err)
		}
	}
}

func TestValidateUTF8(t *testing.T) {
	if err := ValidateUTF8("naïve"); err != nil {
		t.Errorf("ValidateUTF8(naïve) = %v", err)
	}
	if err := ValidateUTF8("\xff\xfe"); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("ValidateUTF8(invalid) = %v, want INVALID_INPUT", err)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInputTooLarge,
		ErrCodeInvalidFormat,
		ErrCodeInvalidOptions,
		ErrCodeNotFound,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
