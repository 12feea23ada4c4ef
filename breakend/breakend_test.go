package breakend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPair(name, contig string, pos1, pos2 int) PairedInterval {
	return PairedInterval{
		Name:    name,
		Score:   math.NaN(),
		Contig1: contig, Start1: pos1, End1: pos1, Strand1: Forward,
		Contig2: contig, Start2: pos2, End2: pos2, Strand2: Reverse,
	}
}

func TestFromPairsNaming(t *testing.T) {
	pairs := []PairedInterval{
		testPair("a", "chr1", 100, 200),
		testPair("", "chr1", 300, 400),
		testPair(".", "chr1", 500, 600),
		testPair("a", "chr1", 700, 800), // duplicate, must be renamed
	}
	s, err := FromPairs(pairs, "bp")
	require.NoError(t, err)
	require.Equal(t, 8, s.Len())
	wantIDs := []string{"a_1", "a_2", "bp2_1", "bp2_2", "bp3_1", "bp3_2", "bp4_1", "bp4_2"}
	for i, id := range wantIDs {
		assert.Equal(t, id, s.Get(i).ID)
	}
}

func TestPartnerInvolution(t *testing.T) {
	pairs := []PairedInterval{
		testPair("a", "chr1", 100, 200),
		testPair("b", "chr2", 300, 400),
	}
	s, err := FromPairs(pairs, "bp")
	require.NoError(t, err)
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, i, s.Partner(s.Partner(i)), "partner(partner(%d))", i)
		assert.NotEqual(t, i, s.Partner(i))
	}
	i, ok := s.IndexByID("b_2")
	require.True(t, ok)
	assert.Equal(t, "b_1", s.PartnerOf(i).ID)
}

func TestNewStoreBrokenPartner(t *testing.T) {
	base := func() []Breakend {
		return []Breakend{
			{Contig: "chr1", Start: 100, End: 100, Strand: Forward, ID: "x_1", PartnerID: "x_2"},
			{Contig: "chr1", Start: 200, End: 200, Strand: Reverse, ID: "x_2", PartnerID: "x_1"},
		}
	}

	_, err := NewStore(base())
	require.NoError(t, err)

	missing := base()
	missing[0].PartnerID = "nope"
	_, err = NewStore(missing)
	assert.Error(t, err)

	self := base()
	self[0].PartnerID = "x_1"
	_, err = NewStore(self)
	assert.Error(t, err)

	nonReciprocal := append(base(),
		Breakend{Contig: "chr1", Start: 300, End: 300, Strand: Forward, ID: "y_1", PartnerID: "x_2"},
	)
	_, err = NewStore(nonReciprocal)
	assert.Error(t, err)

	dup := base()
	dup[1].ID = "x_1"
	_, err = NewStore(dup)
	assert.Error(t, err)
}

func TestOptInt(t *testing.T) {
	assert.Equal(t, 0, OptInt{}.Or(0))
	assert.Equal(t, 7, OptInt{}.Or(7))
	assert.Equal(t, 3, NewOptInt(3).Or(7))
}
