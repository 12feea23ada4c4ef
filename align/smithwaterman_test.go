package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testParams = Params{Match: 2, Mismatch: -6, GapOpen: 5, GapExtend: 3}

func TestLocalIdentical(t *testing.T) {
	var sw SmithWaterman
	assert.Equal(t, Result{Length: 4, Score: 8}, sw.Local("ACGT", "ACGT", testParams))
}

func TestLocalSubstring(t *testing.T) {
	var sw SmithWaterman
	assert.Equal(t, Result{Length: 3, Score: 6}, sw.Local("CGT", "TACGTA", testParams))
	assert.Equal(t, Result{Length: 3, Score: 6}, sw.Local("TACGTA", "CGT", testParams))
}

func TestLocalMismatch(t *testing.T) {
	var sw SmithWaterman
	// With a cheap mismatch the best alignment spans the substitution.
	p := Params{Match: 2, Mismatch: -1, GapOpen: 5, GapExtend: 3}
	assert.Equal(t, Result{Length: 8, Score: 13}, sw.Local("ACGTACGT", "ACGAACGT", p))

	// At the default penalty, extending across the mismatch cannot pay for
	// itself here, so the alignment stops at the exact block.
	assert.Equal(t, Result{Length: 3, Score: 6}, sw.Local("ACGTA", "ACGAA", testParams))
}

func TestLocalAffineGap(t *testing.T) {
	var sw SmithWaterman
	// Twelve matches minus one length-2 gap: 24 - (5 + 2*3) = 13.
	got := sw.Local("AAAAAACCCCCC", "AAAAAATTCCCCCC", testParams)
	assert.Equal(t, Result{Length: 14, Score: 13, Insertions: 2}, got)

	// Swapping the inputs turns the insertions into deletions.
	got = sw.Local("AAAAAATTCCCCCC", "AAAAAACCCCCC", testParams)
	assert.Equal(t, Result{Length: 14, Score: 13, Deletions: 2}, got)
}

func TestLocalLongestCommonSubstring(t *testing.T) {
	var sw SmithWaterman
	p := LongestCommonSubstring(2)
	assert.Equal(t, Result{Length: 4, Score: 8}, sw.Local("XXABCDYY", "ZZABCDWW", p))
	// The prohibitive penalties must leave no room for gapped or
	// substituted alignments.
	assert.Equal(t, Result{Length: 6, Score: 12}, sw.Local("AAAAAACCCCCC", "AAAAAATTCCCCCC", p))
}

func TestLocalDegenerate(t *testing.T) {
	var sw SmithWaterman
	assert.Equal(t, Result{}, sw.Local("", "ACGT", testParams))
	assert.Equal(t, Result{}, sw.Local("ACGT", "", testParams))
	assert.Equal(t, Result{}, sw.Local("", "", testParams))
	assert.Equal(t, Result{}, sw.Local("AAAA", "TTTT", testParams))
}
