// Package substats computes per-length substring complexity statistics.
//
// For every length k from 1 to len(text), [Compute] counts the distinct
// substrings of length k and derives ratio = count / k. Highly repetitive
// text saturates the count early, which lowers the ratio. [Summarize] picks
// every k that reaches the global maximum ratio, keeping ties.
//
//	res := substats.Analyze("abab")
//	res.Series            // [{1 2 2} {2 2 1} {3 2 0.67} {4 1 0.25}]
//	res.Summary.MaxRatio  // 2
//
// Substrings are byte windows, matching the trie package. Counting is done
// per k with a set of window hashes verified against the text, so memory
// stays O(n) per length instead of materializing every substring.
package substats
