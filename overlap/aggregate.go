package overlap

import (
	"math"
	"sort"
)

// CountMatches turns a match list into per-query hit counts.  The result
// covers every query breakend: result[q] is the number of subject breakends
// matched to query breakend q, zero included.
//
// In best-only mode each subject is claimed by at most one query: the one
// with the highest score, ties broken by the lower query index.  The
// assignment is exactly a stable sort on (score descending, query index
// ascending) followed by first-occurrence-per-subject retention.  score may
// be nil unless bestOnly is set; a NaN score sorts below every real score.
func CountMatches(matches []Match, numQuery int, bestOnly bool, score func(query int) float64) []int {
	counts := make([]int, numQuery)
	if !bestOnly {
		for _, m := range matches {
			counts[m.Query]++
		}
		return counts
	}
	ordered := append([]Match(nil), matches...)
	key := func(q int) float64 {
		s := score(q)
		if math.IsNaN(s) {
			return math.Inf(-1)
		}
		return s
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := key(ordered[i].Query), key(ordered[j].Query)
		if si != sj {
			return si > sj
		}
		return ordered[i].Query < ordered[j].Query
	})
	claimed := make(map[int]bool)
	for _, m := range ordered {
		if claimed[m.Subject] {
			continue
		}
		claimed[m.Subject] = true
		counts[m.Query]++
	}
	return counts
}
