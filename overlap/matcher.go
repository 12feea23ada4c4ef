package overlap

import (
	"sort"

	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
)

// Match is a breakpoint-level hit: the breakends at Query and Subject
// overlap under the configured tolerance, and so do their partners.
//
// SizeError is the minimum possible difference between the two events'
// physical sizes; LocalBPError and RemoteBPError are the minimum possible
// distances between the matched breakends themselves and between their
// partners.  These are only populated when size filtering ran
// (ErrorsComputed).
type Match struct {
	Query   int
	Subject int

	SizeError      int
	LocalBPError   int
	RemoteBPError  int
	ErrorsComputed bool
}

// FindBreakpointMatches matches breakpoints between two stores.
//
// The breakend-side overlap join runs once.  Partner-side hits are derived
// from it by substituting each hit's partner indices, which is valid because
// overlap is symmetric and partner indices are known; it avoids a second
// interval join.  A pair is a breakpoint match exactly when it is produced by
// both sides, detected by sorting the combined hit list on (Query, Subject)
// and flagging entries equal to their predecessor.  The sort-adjacency check
// is load-bearing: marking duplicates across the full multiset materializes
// per-pair comparison state that does not fit in memory at the hit counts
// this is run at, while the sorted pass peaks at O(n log n).
func FindBreakpointMatches(query, subject *breakend.Store, opts Opts) ([]Match, error) {
	hits, err := FindOverlaps(query, subject, opts)
	if err != nil {
		return nil, err
	}
	combined := make([]Hit, 0, 2*len(hits))
	combined = append(combined, hits...)
	for _, h := range hits {
		combined = append(combined, Hit{
			Query:   query.Partner(h.Query),
			Subject: subject.Partner(h.Subject),
		})
	}
	sort.Slice(combined, func(i, j int) bool {
		if combined[i].Query != combined[j].Query {
			return combined[i].Query < combined[j].Query
		}
		return combined[i].Subject < combined[j].Subject
	})

	var matches []Match
	for i := 1; i < len(combined); i++ {
		if combined[i] != combined[i-1] {
			continue
		}
		matches = append(matches, Match{Query: combined[i].Query, Subject: combined[i].Subject})
		// Skip the rest of this equal run.
		for i+1 < len(combined) && combined[i+1] == combined[i] {
			i++
		}
	}

	if opts.SizeMargin < 0 {
		return matches, nil
	}
	kept := matches[:0]
	for _, m := range matches {
		qLocal, qRemote := query.Get(m.Query), query.PartnerOf(m.Query)
		sLocal, sRemote := subject.Get(m.Subject), subject.PartnerOf(m.Subject)

		qMin, qMax := sizeInterval(qLocal, qRemote)
		sMin, sMax := sizeInterval(sLocal, sRemote)
		smallerMax := qMax
		if sMax < smallerMax {
			smallerMax = sMax
		}

		m.SizeError = intervalGap(qMin, qMax, sMin, sMax)
		m.LocalBPError = distanceMin(qLocal, sLocal)
		m.RemoteBPError = distanceMin(qRemote, sRemote)
		m.ErrorsComputed = true

		// The -1 tolerates single-base coordinate rounding.
		if !(float64(m.SizeError-1) < opts.SizeMargin*float64(smallerMax)) {
			continue
		}
		if rm := opts.RestrictMarginToSizeMultiple; rm > 0 {
			limit := rm*float64(smallerMax) + 1
			if float64(m.LocalBPError) > limit || float64(m.RemoteBPError) > limit {
				continue
			}
		}
		kept = append(kept, m)
	}
	return kept, nil
}

// sizeInterval bounds the physical size of the event whose two breakends are
// a and b: the inter-breakend distance under coordinate uncertainty, plus the
// untemplated insertion length.  Never negative.
func sizeInterval(a, b *breakend.Breakend) (min, max int) {
	ins := a.InsLen.Or(b.InsLen.Or(0))
	min = distanceMin(a, b) + ins
	max = distanceMax(a, b) + ins
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	return min, max
}

// distanceMin is the smallest possible distance between two breakends'
// supporting intervals; overlapping or touching intervals have distance 0.
func distanceMin(a, b *breakend.Breakend) int {
	lo, hi := a.Start, a.End
	if b.Start > lo {
		lo = b.Start
	}
	if b.End < hi {
		hi = b.End
	}
	if d := lo - hi; d > 0 {
		return d
	}
	return 0
}

// distanceMax is the largest possible distance between two breakends'
// supporting intervals.
func distanceMax(a, b *breakend.Breakend) int {
	lo, hi := a.Start, a.End
	if b.Start < lo {
		lo = b.Start
	}
	if b.End > hi {
		hi = b.End
	}
	return hi - lo
}

// intervalGap is the minimum |x-y| over x in [aMin,aMax], y in [bMin,bMax];
// zero when the intervals overlap.
func intervalGap(aMin, aMax, bMin, bMax int) int {
	lo, hi := aMin, aMax
	if bMin > lo {
		lo = bMin
	}
	if bMax < hi {
		hi = bMax
	}
	if d := lo - hi; d > 0 {
		return d
	}
	return 0
}
