package substats

// Stat is the distinct-substring count for a single length.
type Stat struct {
	K     int     `json:"k" bson:"k"`
	Count int     `json:"count" bson:"count"`
	Ratio float64 `json:"ratio" bson:"ratio"`
}

// Summary holds every Stat that reaches the maximum ratio, in order of k.
type Summary struct {
	BestPoints []Stat  `json:"best_points" bson:"best_points"`
	MaxRatio   float64 `json:"max_ratio" bson:"max_ratio"`
}

// IsBest reports whether k is one of the best points.
func (s Summary) IsBest(k int) bool {
	for _, p := range s.BestPoints {
		if p.K == k {
			return true
		}
	}
	return false
}

// Result bundles a series with its summary.
type Result struct {
	Series  []Stat  `json:"series" bson:"series"`
	Summary Summary `json:"summary" bson:"summary"`
}

// Analyze computes the series for text and summarizes it.
func Analyze(text string) Result {
	series := Compute(text)
	return Result{Series: series, Summary: Summarize(series)}
}

// Compute returns one Stat per length k = 1..len(text). Empty text yields an
// empty, non-nil series.
func Compute(text string) []Stat {
	n := len(text)
	stats := make([]Stat, 0, n)
	for k := 1; k <= n; k++ {
		count := countDistinct(text, k)
		stats = append(stats, Stat{K: k, Count: count, Ratio: float64(count) / float64(k)})
	}
	return stats
}

// countDistinct counts distinct windows of length k using a rolling hash.
// Windows are bucketed by hash and compared byte-wise within a bucket, so
// collisions never merge two different substrings.
func countDistinct(text string, k int) int {
	const base = 1099511628211 // FNV-64 prime

	var pow uint64 = 1
	for i := 0; i < k-1; i++ {
		pow *= base
	}

	var h uint64
	for i := 0; i < k; i++ {
		h = h*base + uint64(text[i])
	}

	buckets := make(map[uint64][]int, len(text)-k+1)
	count := 0
	for start := 0; ; start++ {
		if addWindow(buckets, text, start, k, h) {
			count++
		}
		end := start + k
		if end >= len(text) {
			break
		}
		h = (h-uint64(text[start])*pow)*base + uint64(text[end])
	}
	return count
}

// addWindow records text[start:start+k] under hash h and reports whether it
// was not seen before.
func addWindow(buckets map[uint64][]int, text string, start, k int, h uint64) bool {
	window := text[start : start+k]
	for _, other := range buckets[h] {
		if text[other:other+k] == window {
			return false
		}
	}
	buckets[h] = append(buckets[h], start)
	return true
}

// Summarize selects every Stat whose ratio equals the maximum. An empty series
// gives MaxRatio 0 and no best points.
func Summarize(stats []Stat) Summary {
	summary := Summary{BestPoints: []Stat{}}
	for i, s := range stats {
		switch {
		case i == 0 || s.Ratio > summary.MaxRatio:
			summary.MaxRatio = s.Ratio
			summary.BestPoints = append(summary.BestPoints[:0], s)
		case s.Ratio == summary.MaxRatio:
			summary.BestPoints = append(summary.BestPoints, s)
		}
	}
	return summary
}
