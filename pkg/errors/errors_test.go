package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "Guard",
			err:  New(ErrCodeInputTooLarge, "text is %d bytes (max %d)", 5000, 4096),
			want: "INPUT_TOO_LARGE: text is 5000 bytes (max 4096)",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeNetwork, fmt.Errorf("dial tcp: connection refused"), "ping redis at %s", "localhost:6379"),
			want: "NETWORK_ERROR: ping redis at localhost:6379: dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeTimeout, context.DeadlineExceeded, "render svg")

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("errors.Is should find the wrapped context error")
	}
	if errors.Unwrap(err) != context.DeadlineExceeded {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
}

func TestCodeThroughWrapping(t *testing.T) {
	notFound := New(ErrCodeNotFound, "analysis %s not found", "0b4e")
	wrapped := fmt.Errorf("history show: %w", notFound)
	recoded := Wrap(ErrCodeInternal, notFound, "load analysis")

	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"Direct", notFound, ErrCodeNotFound},
		{"FmtWrapped", wrapped, ErrCodeNotFound},
		{"OuterCodeWins", recoded, ErrCodeInternal},
		{"Plain", errors.New("boom"), ""},
		{"Nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
		})
	}

	if Is(recoded, ErrCodeNotFound) {
		t.Error("Is should match the outermost coded error only")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeInputTooLarge, "text is 9 bytes (max 8)"), "text is 9 bytes (max 8)"},
		{fmt.Errorf("analyze: %w", New(ErrCodeInvalidOptions, "layout spacing cannot be negative")), "layout spacing cannot be negative"},
		{errors.New("unexpected EOF"), "unexpected EOF"},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidInput, "text is not valid UTF-8"), true},
		{New(ErrCodeInputTooLarge, "too long"), true},
		{New(ErrCodeNotFound, "no such analysis"), true},
		{New(ErrCodeInvalidOptions, "bad backend"), true},
		{Wrap(ErrCodeInvalidFormat, errors.New("inner"), "render"), true},
		{New(ErrCodeNetwork, "mongodb unreachable"), false},
		{New(ErrCodeTimeout, "render timed out"), false},
		{New(ErrCodeInternal, "decode stored analysis"), false},
		{errors.New("plain"), false},
	}
	for _, tt := range tests {
		if got := IsClientError(tt.err); got != tt.want {
			t.Errorf("IsClientError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
