// Package align provides the local sequence alignment primitive used by
// homology scoring.  The scoring arithmetic downstream only depends on the
// Aligner interface, so an alternative implementation (or a test stub) can be
// injected freely; SmithWaterman is the reference implementation.
package align

// Params configures alignment scoring.  Match is a bonus and Mismatch a
// (negative) penalty per column; a gap of length L costs GapOpen +
// L*GapExtend.
type Params struct {
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
}

// LongestCommonSubstring returns Params that price mismatches and gaps out
// of existence, turning local alignment into a longest-common-substring
// search with the given per-base match bonus.
func LongestCommonSubstring(match int) Params {
	const prohibitive = 1 << 28
	return Params{
		Match:     match,
		Mismatch:  -prohibitive,
		GapOpen:   prohibitive,
		GapExtend: prohibitive,
	}
}

// Result summarizes the best local alignment of two sequences.  Length
// counts alignment columns including gap columns; Insertions counts columns
// that consume only the second sequence, Deletions columns that consume only
// the first.  The zero Result describes the empty alignment.
type Result struct {
	Length     int
	Score      int
	Insertions int
	Deletions  int
}

// Aligner computes a best local alignment.
type Aligner interface {
	Local(a, b string, p Params) Result
}
