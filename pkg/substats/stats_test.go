package substats

import (
	"reflect"
	"strings"
	"testing"
)

func bruteForce(text string, k int) int {
	seen := make(map[string]struct{})
	for i := 0; i+k <= len(text); i++ {
		seen[text[i:i+k]] = struct{}{}
	}
	return len(seen)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Stat
	}{
		{"Empty", "", []Stat{}},
		{"Single", "a", []Stat{{K: 1, Count: 1, Ratio: 1}}},
		{"Repeated", "aa", []Stat{{K: 1, Count: 1, Ratio: 1}, {K: 2, Count: 1, Ratio: 0.5}}},
		{"Abab", "abab", []Stat{
			{K: 1, Count: 2, Ratio: 2},
			{K: 2, Count: 2, Ratio: 1},
			{K: 3, Count: 2, Ratio: 2.0 / 3},
			{K: 4, Count: 1, Ratio: 0.25},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compute(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestComputeMatchesBruteForce(t *testing.T) {
	texts := []string{
		"banana", "mississippi", "abracadabra", strings.Repeat("ab", 50),
		strings.Repeat("a", 80), "the quick brown fox jumps over the lazy dog",
		"\x00\x01\x00\x01\xff\xfe",
	}
	for _, text := range texts {
		for _, s := range Compute(text) {
			if want := bruteForce(text, s.K); s.Count != want {
				t.Errorf("%q k=%d: count = %d, want %d", text, s.K, s.Count, want)
			}
		}
	}
}

func TestRatioAtOneIsDistinctUnits(t *testing.T) {
	for _, text := range []string{"banana", "abcabc", "zzzz", "hello world"} {
		distinct := make(map[byte]bool)
		for i := 0; i < len(text); i++ {
			distinct[text[i]] = true
		}
		got := Compute(text)[0]
		if got.K != 1 || got.Ratio != float64(len(distinct)) {
			t.Errorf("%q: k=1 ratio = %v, want %d", text, got.Ratio, len(distinct))
		}
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantMax   float64
		wantBestK []int
	}{
		{"Empty", "", 0, nil},
		{"Single", "a", 1, []int{1}},
		{"Repeated", "aa", 1, []int{1}},
		{"Abab", "abab", 2, []int{1}},
		{"Distinct", "abcd", 4, []int{1}},
		// k=1: 3 distinct, k=2: ab,bc,ca = 3 -> 1.5, so k=1 wins.
		{"Period", "abcabc", 3, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Analyze(tt.text).Summary
			if s.MaxRatio != tt.wantMax {
				t.Errorf("MaxRatio = %v, want %v", s.MaxRatio, tt.wantMax)
			}
			var ks []int
			for _, p := range s.BestPoints {
				ks = append(ks, p.K)
			}
			if !reflect.DeepEqual(ks, tt.wantBestK) {
				t.Errorf("best k = %v, want %v", ks, tt.wantBestK)
			}
			if s.BestPoints == nil {
				t.Error("BestPoints should be non-nil")
			}
		})
	}
}

func TestSummarizeKeepsTies(t *testing.T) {
	series := []Stat{
		{K: 1, Count: 2, Ratio: 2},
		{K: 2, Count: 4, Ratio: 2},
		{K: 3, Count: 3, Ratio: 1},
		{K: 4, Count: 8, Ratio: 2},
	}
	s := Summarize(series)
	if s.MaxRatio != 2 {
		t.Errorf("MaxRatio = %v, want 2", s.MaxRatio)
	}
	if len(s.BestPoints) != 3 || s.BestPoints[0].K != 1 || s.BestPoints[1].K != 2 || s.BestPoints[2].K != 4 {
		t.Errorf("BestPoints = %+v, want k=1,2,4", s.BestPoints)
	}
	if !s.IsBest(4) || s.IsBest(3) {
		t.Error("IsBest disagrees with BestPoints")
	}
}

func TestSummarizeLaterPeak(t *testing.T) {
	series := []Stat{
		{K: 1, Count: 1, Ratio: 1},
		{K: 2, Count: 4, Ratio: 2},
		{K: 3, Count: 3, Ratio: 1},
	}
	s := Summarize(series)
	if len(s.BestPoints) != 1 || s.BestPoints[0].K != 2 {
		t.Errorf("BestPoints = %+v, want only k=2", s.BestPoints)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := Analyze("abracadabra")
	b := Analyze("abracadabra")
	if !reflect.DeepEqual(a, b) {
		t.Error("Analyze should be deterministic")
	}
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.00"},
		{2.0 / 3, "0.67"},
		{0.125, "0.13"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		if got := FormatRatio(tt.in); got != tt.want {
			t.Errorf("FormatRatio(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	var zero float64
	if got := FormatRatio(1 / zero); got != "-" {
		t.Errorf("FormatRatio(+Inf) = %q, want \"-\"", got)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		max   float64
		count int
		want  []float64
	}{
		{0, 6, []float64{0}},
		{5, 6, []float64{0, 1, 2, 3, 4, 5}},
		{12, 6, []float64{0, 2, 4, 6, 8, 10, 12}},
		{7, 6, []float64{0, 1, 2, 3, 4, 5, 6, 7}},
		{23, 6, []float64{0, 5, 10, 15, 20, 23}},
	}
	for _, tt := range tests {
		if got := Ticks(tt.max, tt.count); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Ticks(%v, %d) = %v, want %v", tt.max, tt.count, got, tt.want)
		}
	}
}
