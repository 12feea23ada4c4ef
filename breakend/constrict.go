package breakend

import (
	"github.com/pkg/errors"
)

// ConstrictMode selects the representative position used when collapsing a
// breakend's supporting interval to a single base.
type ConstrictMode string

// ConstrictMiddle collapses each interval to its midpoint.  The midpoint is
// rounded down when the breakend starts before its partner or lies on the
// reverse strand, and up otherwise, so the two breakends of a deletion-type
// event land on adjacent bases instead of rounding into each other.
const ConstrictMiddle ConstrictMode = "middle"

// Constrict returns a copy of the store in which every breakend's supporting
// interval has been collapsed to a single representative base.  When
// contigLengths has an entry for a breakend's contig, the resulting position
// is clamped into [1, length].  An unrecognized mode is fatal.
func (s *Store) Constrict(mode ConstrictMode, contigLengths map[string]int) (*Store, error) {
	if mode != ConstrictMiddle {
		return nil, errors.Errorf("unsupported constriction mode %q", mode)
	}
	out := make([]Breakend, len(s.breakends))
	copy(out, s.breakends)
	for i := range out {
		b := &out[i]
		p := s.PartnerOf(i)
		var pos int
		if b.Start < p.Start || b.Strand == Reverse {
			pos = (b.Start + b.End) / 2
		} else {
			pos = (b.Start + b.End + 1) / 2
		}
		if n, ok := contigLengths[b.Contig]; ok {
			if pos < 1 {
				pos = 1
			}
			if pos > n {
				pos = n
			}
		}
		b.Start, b.End = pos, pos
	}
	return NewStore(out)
}
