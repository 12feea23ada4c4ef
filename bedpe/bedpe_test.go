package bedpe

import (
	"math"
	"strings"
	"testing"

	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPairs(t *testing.T, data string) []breakend.PairedInterval {
	t.Helper()
	pairs, err := ReadPairs(strings.NewReader(data))
	require.NoError(t, err)
	return pairs
}

func TestReadPairsFull(t *testing.T) {
	pairs := readPairs(t, "chr1\t99\t100\tchr2\t199\t200\tinv0\t37.5\t+\t+\n")
	require.Len(t, pairs, 1)
	p := pairs[0]
	assert.Equal(t, "chr1", p.Contig1)
	assert.Equal(t, 100, p.Start1)
	assert.Equal(t, 100, p.End1)
	assert.Equal(t, "chr2", p.Contig2)
	assert.Equal(t, 200, p.Start2)
	assert.Equal(t, 200, p.End2)
	assert.Equal(t, "inv0", p.Name)
	assert.Equal(t, 37.5, p.Score)
	assert.Equal(t, breakend.Forward, p.Strand1)
	assert.Equal(t, breakend.Forward, p.Strand2)
}

func TestReadPairsDefaults(t *testing.T) {
	// Six columns: no name, NaN score, deletion-orientation strands.
	pairs := readPairs(t, "chr1\t99\t105\tchr1\t199\t200\n")
	require.Len(t, pairs, 1)
	p := pairs[0]
	assert.Equal(t, "", p.Name)
	assert.True(t, math.IsNaN(p.Score))
	assert.Equal(t, breakend.Forward, p.Strand1)
	assert.Equal(t, breakend.Reverse, p.Strand2)

	// The half-open interval [99, 105) covers six bases.
	assert.Equal(t, 100, p.Start1)
	assert.Equal(t, 105, p.End1)

	// "." placeholders behave like missing columns.
	pairs = readPairs(t, "chr1\t99\t100\tchr1\t199\t200\tdel0\t.\t.\t.\n")
	require.Len(t, pairs, 1)
	p = pairs[0]
	assert.Equal(t, "del0", p.Name)
	assert.True(t, math.IsNaN(p.Score))
	assert.Equal(t, breakend.Forward, p.Strand1)
	assert.Equal(t, breakend.Reverse, p.Strand2)
}

func TestReadPairsSkipsHeaders(t *testing.T) {
	data := "# a comment\n" +
		"track name=sv\n" +
		"browser position chr1\n" +
		"\n" +
		"   \n" +
		"chr1\t0\t1\tchr1\t10\t11\n"
	pairs := readPairs(t, data)
	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].Start1)
	assert.Equal(t, 11, pairs[0].Start2)
}

func TestReadPairsWhitespace(t *testing.T) {
	// Runs of spaces and tabs both separate columns.
	pairs := readPairs(t, "chr1  99 100\t chr2\t199  200  name1\n")
	require.Len(t, pairs, 1)
	assert.Equal(t, "name1", pairs[0].Name)
	assert.Equal(t, "chr2", pairs[0].Contig2)
}

func TestReadPairsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"too few columns", "chr1\t99\t100\tchr2\t199\n"},
		{"non-numeric coordinate", "chr1\tx\t100\tchr2\t199\t200\n"},
		{"negative start", "chr1\t-1\t100\tchr2\t199\t200\n"},
		{"empty interval", "chr1\t100\t100\tchr2\t199\t200\n"},
		{"inverted interval", "chr1\t100\t90\tchr2\t199\t200\n"},
		{"bad score", "chr1\t99\t100\tchr2\t199\t200\tn\tabc\n"},
		{"bad strand", "chr1\t99\t100\tchr2\t199\t200\tn\t1\t*\t-\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPairs(strings.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}
