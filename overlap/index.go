package overlap

import (
	"runtime"

	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/biogo/store/interval"
	"github.com/grailbio/base/traverse"
)

// Hit pairs a query breakend index with a subject breakend index whose
// expanded supporting intervals overlap.
type Hit struct {
	Query   int
	Subject int
}

// treeKey groups subject breakends into one interval tree per contig (and
// strand, unless strand is ignored).
type treeKey struct {
	contig string
	strand breakend.Strand
}

const anyStrand = breakend.Strand(0)

// treeEntry is a breakend's expanded interval in half-open coordinates, as
// stored in (or queried against) an interval tree.  minOverlap only matters
// on query entries: the tree calls the query's Overlap against candidate
// ranges, so the query entry carries the match threshold.
type treeEntry struct {
	start, end int // half-open, already expanded by MaxGap
	index      int
	minOverlap int
}

func (e treeEntry) Overlap(b interval.IntRange) bool {
	lo, hi := e.start, e.end
	if b.Start > lo {
		lo = b.Start
	}
	if b.End < hi {
		hi = b.End
	}
	return hi-lo >= e.minOverlap
}

func (e treeEntry) Range() interval.IntRange {
	return interval.IntRange{Start: e.start, End: e.end}
}

func (e treeEntry) ID() uintptr { return uintptr(e.index) }

func expand(b *breakend.Breakend, maxGap, minOverlap, index int) treeEntry {
	// 1-based inclusive [Start, End] widened by maxGap, then converted to
	// half-open.
	return treeEntry{
		start:      b.Start - maxGap,
		end:        b.End + maxGap + 1,
		index:      index,
		minOverlap: minOverlap,
	}
}

func entryKey(b *breakend.Breakend, ignoreStrand bool) treeKey {
	if ignoreStrand {
		return treeKey{contig: b.Contig, strand: anyStrand}
	}
	return treeKey{contig: b.Contig, strand: b.Strand}
}

// FindOverlaps returns every (query, subject) breakend index pair whose
// supporting intervals, after expanding each side by opts.MaxGap, share at
// least opts.MinOverlap bases on the same contig (and strand, unless
// opts.IgnoreStrand).  Output ordering is unspecified; callers sort.
//
// The join is built on one interval tree per contig/strand group of the
// subject store, so its cost is near-linear in input plus output size.
func FindOverlaps(query, subject *breakend.Store, opts Opts) ([]Hit, error) {
	minOverlap := opts.MinOverlap
	if minOverlap < 1 {
		minOverlap = 1
	}
	trees := make(map[treeKey]*interval.IntTree)
	for i := 0; i < subject.Len(); i++ {
		b := subject.Get(i)
		key := entryKey(b, opts.IgnoreStrand)
		t := trees[key]
		if t == nil {
			t = &interval.IntTree{}
			trees[key] = t
		}
		if err := t.Insert(expand(b, opts.MaxGap, minOverlap, i), true); err != nil {
			return nil, err
		}
	}
	for _, t := range trees {
		t.AdjustRanges()
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > query.Len() {
		parallelism = query.Len()
	}
	if parallelism == 0 {
		return nil, nil
	}
	perShard := make([][]Hit, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * query.Len()) / parallelism
		endIdx := ((jobIdx + 1) * query.Len()) / parallelism
		var hits []Hit
		for qi := startIdx; qi < endIdx; qi++ {
			b := query.Get(qi)
			t := trees[entryKey(b, opts.IgnoreStrand)]
			if t == nil {
				continue
			}
			q := expand(b, opts.MaxGap, minOverlap, qi)
			for _, iv := range t.Get(q) {
				hits = append(hits, Hit{Query: qi, Subject: iv.(treeEntry).index})
			}
		}
		perShard[jobIdx] = hits
		return nil
	})
	if err != nil {
		return nil, err
	}
	n := 0
	for _, hits := range perShard {
		n += len(hits)
	}
	all := make([]Hit, 0, n)
	for _, hits := range perShard {
		all = append(all, hits...)
	}
	return all, nil
}
