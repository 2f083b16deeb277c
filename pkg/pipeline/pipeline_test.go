package pipeline

import (
	"strings"
	"testing"

	"github.com/matzehuels/suffixlens/pkg/errors"
	"github.com/matzehuels/suffixlens/pkg/layout"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("empty options should be valid: %v", err)
	}

	if opts.MaxLength != DefaultMaxLength {
		t.Errorf("MaxLength = %d, want %d", opts.MaxLength, DefaultMaxLength)
	}
	if opts.HorizontalGap != layout.DefaultHorizontalGap {
		t.Errorf("HorizontalGap = %v, want %v", opts.HorizontalGap, layout.DefaultHorizontalGap)
	}
	if opts.DepthScale != layout.DefaultDepthScale {
		t.Errorf("DepthScale = %v, want %v", opts.DepthScale, layout.DefaultDepthScale)
	}
	if opts.GuideStep != layout.DefaultGuideStep {
		t.Errorf("GuideStep = %d, want %d", opts.GuideStep, layout.DefaultGuideStep)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsKeepExplicitValues(t *testing.T) {
	opts := Options{MaxLength: Unlimited, HorizontalGap: 100, GuideStep: 2}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.MaxLength != Unlimited || opts.HorizontalGap != 100 || opts.GuideStep != 2 {
		t.Errorf("explicit values overwritten: %+v", opts)
	}
	if opts.DepthScale != layout.DefaultDepthScale {
		t.Errorf("DepthScale = %v, want default", opts.DepthScale)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"MaxLengthTooNegative", Options{MaxLength: -2}},
		{"NegativeGap", Options{HorizontalGap: -1}},
		{"NegativeScale", Options{DepthScale: -1}},
		{"NegativeStep", Options{GuideStep: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, errors.ErrCodeInvalidOptions) {
				t.Errorf("ValidateAndSetDefaults() = %v, want INVALID_OPTIONS", err)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	opts := Options{MaxLength: 4}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if err := opts.ValidateText("abcd"); err != nil {
		t.Errorf("text at limit should pass: %v", err)
	}
	if err := opts.ValidateText("abcde"); !errors.Is(err, errors.ErrCodeInputTooLarge) {
		t.Errorf("text over limit = %v, want INPUT_TOO_LARGE", err)
	}

	unlimited := Options{MaxLength: Unlimited}
	if err := unlimited.ValidateText(strings.Repeat("a", DefaultMaxLength+1)); err != nil {
		t.Errorf("Unlimited should accept long text: %v", err)
	}
}

func TestValidateArtifact(t *testing.T) {
	tests := []struct {
		kind, format string
		wantErr      bool
	}{
		{KindGraph, FormatJSON, false},
		{KindGraph, FormatDOT, false},
		{KindGraph, FormatSVG, false},
		{KindStats, FormatJSON, false},
		{KindStats, FormatSVG, false},
		{KindStats, FormatDOT, true},
		{KindGraph, "png", true},
		{KindGraph, "SVG", true}, // case-sensitive
		{"chart", FormatSVG, true},
		{"", "", true},
	}

	for _, tt := range tests {
		err := ValidateArtifact(tt.kind, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateArtifact(%q, %q) error = %v, wantErr %v", tt.kind, tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateArtifact(%q, %q) wrong code: %v", tt.kind, tt.format, err)
		}
	}
}

func TestAnalysisKeyOptsFollowLayout(t *testing.T) {
	a := Options{}
	b := Options{HorizontalGap: 100}
	_ = a.ValidateAndSetDefaults()
	_ = b.ValidateAndSetDefaults()
	if a.AnalysisKeyOpts() == b.AnalysisKeyOpts() {
		t.Error("different spacing should give different key options")
	}
}
