package homology

import (
	"strings"
	"testing"

	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/Al3n70rn/StructuralVariantAnnotation/refseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource(t *testing.T, fasta string) refseq.Source {
	t.Helper()
	src, err := refseq.NewFasta(strings.NewReader(fasta))
	require.NoError(t, err)
	return src
}

func point(contig string, pos int, strand breakend.Strand) *breakend.Breakend {
	return &breakend.Breakend{Contig: contig, Start: pos, End: pos, Strand: strand}
}

func TestExtractForward(t *testing.T) {
	src := testSource(t, ">chr1\nACGTACGTAC\n")

	got, err := ExtractReferenceSequence(point("chr1", 5, breakend.Forward), 3, 2, src)
	require.NoError(t, err)
	assert.Equal(t, "GTACG", got)

	// Window clipped at the contig start is padded, not shortened.
	got, err = ExtractReferenceSequence(point("chr1", 2, breakend.Forward), 5, 0, src)
	require.NoError(t, err)
	assert.Equal(t, "NNNAC", got)
	assert.Len(t, got, 5)
}

func TestExtractReverse(t *testing.T) {
	src := testSource(t, ">chr1\nAACCGGTT\n")

	// The reverse-strand window is mirrored and reverse-complemented so the
	// anchor still leads into the breakpoint in traversal order.
	got, err := ExtractReferenceSequence(point("chr1", 3, breakend.Reverse), 2, 2, src)
	require.NoError(t, err)
	assert.Equal(t, "GGTT", got)

	// Padding past the contig end shows up at the start of the
	// strand-corrected sequence.
	got, err = ExtractReferenceSequence(point("chr1", 7, breakend.Reverse), 4, 0, src)
	require.NoError(t, err)
	assert.Equal(t, "NNAA", got)
}

func TestExtractOffContig(t *testing.T) {
	src := testSource(t, ">chr1\nACGT\n")

	got, err := ExtractReferenceSequence(point("chr1", 100, breakend.Forward), 3, 2, src)
	require.NoError(t, err)
	assert.Equal(t, "NNNNN", got)

	_, err = ExtractReferenceSequence(point("chrX", 1, breakend.Forward), 3, 2, src)
	assert.Error(t, err)
}

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "ACGT", ReverseComplement("ACGT"))
	assert.Equal(t, "TTAACC", ReverseComplement("GGTTAA"))
	assert.Equal(t, "ANT", ReverseComplement("AXT"))
	assert.Equal(t, "", ReverseComplement(""))
}
