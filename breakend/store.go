package breakend

import (
	"github.com/pkg/errors"
)

// Store is an ordered, immutable collection of breakends.  It owns all
// breakend records; other components borrow them by integer index.  The
// partner relation is resolved once at construction, so Partner is O(1).
type Store struct {
	breakends []Breakend
	byID      map[string]int
	partner   []int
}

// NewStore builds a Store and validates the partner relation: every
// breakend's PartnerID must resolve to exactly one other breakend in the same
// store, and that breakend must point back.  A violation is fatal for the
// whole store since downstream matching assumes a perfect involution.
func NewStore(breakends []Breakend) (*Store, error) {
	s := &Store{
		breakends: breakends,
		byID:      make(map[string]int, len(breakends)),
		partner:   make([]int, len(breakends)),
	}
	for i := range breakends {
		b := &breakends[i]
		if b.ID == "" {
			return nil, errors.Errorf("breakend %d: empty ID", i)
		}
		if prev, dup := s.byID[b.ID]; dup {
			return nil, errors.Errorf("breakend %d: ID %q already used by breakend %d", i, b.ID, prev)
		}
		s.byID[b.ID] = i
	}
	for i := range breakends {
		b := &breakends[i]
		j, ok := s.byID[b.PartnerID]
		if !ok {
			return nil, errors.Errorf("broken partner relation: breakend %q names partner %q, which is not in the store", b.ID, b.PartnerID)
		}
		if j == i {
			return nil, errors.Errorf("broken partner relation: breakend %q is partnered with itself", b.ID)
		}
		if breakends[j].PartnerID != b.ID {
			return nil, errors.Errorf("broken partner relation: breakend %q names partner %q, but %q names %q",
				b.ID, b.PartnerID, breakends[j].ID, breakends[j].PartnerID)
		}
		s.partner[i] = j
	}
	return s, nil
}

// Len returns the number of breakends in the store.
func (s *Store) Len() int { return len(s.breakends) }

// Get borrows the breakend at index i.  The returned record must not be
// mutated.
func (s *Store) Get(i int) *Breakend { return &s.breakends[i] }

// Partner returns the index of breakend i's partner.
func (s *Store) Partner(i int) int { return s.partner[i] }

// PartnerOf borrows the partner of the breakend at index i.
func (s *Store) PartnerOf(i int) *Breakend { return &s.breakends[s.partner[i]] }

// IndexByID returns the index of the breakend with the given ID.
func (s *Store) IndexByID(id string) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}
