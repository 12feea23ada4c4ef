// Package breakend defines the Breakend record type and the Store that owns
// a set of breakends together with their partner relation.
//
// A breakend is one side of a structural-variant junction: a reference
// position plus a strand plus a reference to the breakend on the other side
// of the junction (its partner).  A breakpoint is a pair of partnered
// breakends.  Breakends are constructed in pairs from paired-interval input
// and are immutable once a Store is built; Constrict returns a new Store
// rather than editing in place.
package breakend

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Strand encodes the direction in which a breakend traverses into its
// breakpoint: Forward means left-to-right along the reference, Reverse means
// right-to-left.
type Strand byte

const (
	Forward Strand = '+'
	Reverse Strand = '-'
)

func (s Strand) String() string { return string(rune(s)) }

// OptInt is an integer attribute that may be absent.  The zero value is
// "absent".  Fallback policy when an absent value reaches arithmetic is
// decided per call site (e.g. size arithmetic treats absent insertion length
// as 0, while an absent SV length leaves the homology anchor unshrunk).
type OptInt struct {
	Int   int
	Valid bool
}

// NewOptInt returns a present OptInt.
func NewOptInt(v int) OptInt { return OptInt{Int: v, Valid: true} }

// Or returns the value, or fallback when absent.
func (o OptInt) Or(fallback int) int {
	if o.Valid {
		return o.Int
	}
	return fallback
}

// Breakend is one end of a structural-variant breakpoint.
//
// Start and End bound the supporting interval on the reference, 1-based and
// inclusive.  A breakend loaded from interval input may span several bases;
// after Store.Constrict, Start == End and the breakend is a single point.
type Breakend struct {
	Contig string
	Start  int
	End    int
	Strand Strand

	// ID is unique within a Store.  PartnerID names the breakend on the
	// other side of the junction; the relation must be a perfect involution
	// (reciprocal, never self-referential).
	ID        string
	PartnerID string

	// InsLen is the number of untemplated bases at the junction, when known.
	InsLen OptInt
	// InsSeq is the untemplated junction sequence itself, when known.  It is
	// spliced into the breakpoint sequence during homology scoring.
	InsSeq string
	// SVLen is the nominal event size, when known.
	SVLen OptInt
	// Quality is the call score used for best-match tie-breaking.  NaN when
	// absent.
	Quality float64

	// Attrs carries pass-through fields from the input that this package
	// does not interpret.
	Attrs map[string]string
}

// Pos returns the breakend's representative position.  It is only meaningful
// once the supporting interval has been collapsed to a single base (see
// Store.Constrict); for an interval-backed breakend it returns Start.
func (b *Breakend) Pos() int { return b.Start }

// PairedInterval is one record of paired-interval (BEDPE-style) input: two
// genomic intervals forming a breakpoint, with optional name, score and
// pass-through attributes.  Coordinates are 1-based inclusive.
type PairedInterval struct {
	Name  string
	Score float64 // NaN when absent

	Contig1 string
	Start1  int
	End1    int
	Strand1 Strand

	Contig2 string
	Start2  int
	End2    int
	Strand2 Strand

	Attrs map[string]string
}

// FromPairs builds a Store containing two linked breakends per input pair.
// Breakend IDs are "<name>_1" and "<name>_2".  A pair whose name is empty,
// ".", or a repeat of an earlier pair's name gets the replacement name
// "<prefix><ordinal>" (1-based ordinal) so that IDs are unique store-wide.
func FromPairs(pairs []PairedInterval, prefix string) (*Store, error) {
	seen := make(map[string]bool, len(pairs))
	breakends := make([]Breakend, 0, 2*len(pairs))
	for i, p := range pairs {
		name := p.Name
		if name == "" || name == "." || seen[name] {
			name = fmt.Sprintf("%s%d", prefix, i+1)
		}
		if seen[name] {
			return nil, errors.Errorf("breakend: replacement name %q collides with an input name", name)
		}
		seen[name] = true
		id1, id2 := name+"_1", name+"_2"
		shared := Breakend{
			Quality: p.Score,
			Attrs:   p.Attrs,
		}
		b1, b2 := shared, shared
		b1.Contig, b1.Start, b1.End, b1.Strand = p.Contig1, p.Start1, p.End1, p.Strand1
		b1.ID, b1.PartnerID = id1, id2
		b2.Contig, b2.Start, b2.End, b2.Strand = p.Contig2, p.Start2, p.End2, p.Strand2
		b2.ID, b2.PartnerID = id2, id1
		breakends = append(breakends, b1, b2)
	}
	return NewStore(breakends)
}

// MissingScore is the Quality/Score value for records without one.
func MissingScore() float64 { return math.NaN() }
