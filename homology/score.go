package homology

import (
	"runtime"

	"github.com/Al3n70rn/StructuralVariantAnnotation/align"
	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/Al3n70rn/StructuralVariantAnnotation/refseq"
	"github.com/grailbio/base/traverse"
)

// Opts configures reference homology scoring.
type Opts struct {
	// AnchorLength is the number of reference bases leading into the
	// breakpoint used to anchor each alignment.  Shrunk per breakend to
	// |SVLen|+1 when the event size is known, and further by contig
	// boundaries.
	AnchorLength int
	// Margin is the number of extra reference bases fetched beyond the
	// breakpoint sequence when building the comparison window.
	Margin int

	// Alignment scoring, passed through to the aligner.
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int

	// Parallelism caps the number of concurrent per-breakend jobs.
	// 0 means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	AnchorLength: 300,
	Margin:       5,
	Match:        2,
	Mismatch:     -6,
	GapOpen:      5,
	GapExtend:    3,
}

// Result holds one breakend's homology scores.  Homology is a property of
// the breakpoint: each length is computed once from each side of the
// junction and combined, so partnered breakends report the same lengths.
// Defined is false when no score could be computed for this breakend (anchor
// shrunk to nothing at a contig boundary, unknown contig, or the batch-wide
// degenerate all-empty case).
type Result struct {
	// ExactHomLen is the length of exact sequence homology across the
	// breakpoint.
	ExactHomLen int
	// InexactHomLen is the homology length when mismatches and gaps are
	// tolerated under the configured scoring.
	InexactHomLen int
	// InexactScore is the combined alignment score with the anchors' own
	// self-similarity contribution removed.
	InexactScore int
	Defined      bool
}

// breakendWindows is the per-breakend intermediate state: the shrunk anchor
// plus the two sequences handed to the aligner.
type breakendWindows struct {
	shrunk int
	bpSeq  string // anchor + untemplated insertion + partner-side reference
	refSeq string // anchor + reference continuing past the breakpoint
}

// alignParts is one breakend's contribution before partner combination.
type alignParts struct {
	exactLen   int
	inexactLen int
	score      int
}

// ScoreReferenceHomology computes exact and inexact breakpoint homology for
// every breakend in the store.  The store must be constricted to single-base
// breakends.  A breakend whose windows cannot be built (contig boundary,
// unknown contig) degrades to an undefined Result; it never fails the batch.
func ScoreReferenceHomology(store *breakend.Store, src refseq.Source, aligner align.Aligner, opts Opts) ([]Result, error) {
	n := store.Len()
	results := make([]Result, n)
	if n == 0 {
		return results, nil
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > n {
		parallelism = n
	}

	windows := make([]breakendWindows, n)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * n) / parallelism
		endIdx := ((jobIdx + 1) * n) / parallelism
		for i := startIdx; i < endIdx; i++ {
			windows[i] = buildWindows(store, i, src, opts)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// When every window pair is empty the whole batch is degenerate: there
	// is nothing to align, and the aligner is never invoked.  (This also
	// sidesteps aligner backends that misbehave on all-empty input.)
	degenerate := true
	for i := range windows {
		if windows[i].bpSeq != "" || windows[i].refSeq != "" {
			degenerate = false
			break
		}
	}
	if degenerate {
		return results, nil
	}

	params := align.Params{
		Match:     opts.Match,
		Mismatch:  opts.Mismatch,
		GapOpen:   opts.GapOpen,
		GapExtend: opts.GapExtend,
	}
	lcsParams := align.LongestCommonSubstring(opts.Match)
	parts := make([]alignParts, n)
	err = traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * n) / parallelism
		endIdx := ((jobIdx + 1) * n) / parallelism
		for i := startIdx; i < endIdx; i++ {
			w := &windows[i]
			inexact := aligner.Local(w.bpSeq, w.refSeq, params)
			exact := aligner.Local(w.bpSeq, w.refSeq, lcsParams)
			parts[i] = alignParts{
				exactLen:   exact.Length - w.shrunk - exact.Deletions - exact.Insertions,
				inexactLen: inexact.Length - w.shrunk - inexact.Deletions - inexact.Insertions,
				score:      inexact.Score,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range results {
		if windows[i].shrunk == 0 {
			continue
		}
		p := store.Partner(i)
		results[i] = Result{
			ExactHomLen:   parts[i].exactLen + parts[p].exactLen,
			InexactHomLen: parts[i].inexactLen + parts[p].inexactLen,
			InexactScore:  parts[i].score + parts[p].score - 2*windows[i].shrunk*opts.Match,
			Defined:       true,
		}
	}
	return results, nil
}

// buildWindows derives the anchor, breakpoint and comparison sequences for
// one breakend.  Any extraction failure yields empty windows, which the
// caller reports as an undefined Result for this breakend while its partner
// still scores (the empty side simply contributes nothing).
func buildWindows(store *breakend.Store, i int, src refseq.Source, opts Opts) breakendWindows {
	b := store.Get(i)
	anchor := opts.AnchorLength
	if b.SVLen.Valid {
		svLen := b.SVLen.Int
		if svLen < 0 {
			svLen = -svLen
		}
		if svLen+1 < anchor {
			anchor = svLen + 1
		}
	}
	anchorSeq, err := ExtractReferenceSequence(b, anchor, 0, src)
	if err != nil {
		return breakendWindows{}
	}
	anchorSeq = trimToKnownSuffix(anchorSeq)
	shrunk := len(anchorSeq)
	if shrunk == 0 {
		return breakendWindows{}
	}

	partner := store.PartnerOf(i)
	partnerAnchor, err := ExtractReferenceSequence(partner, shrunk, 0, src)
	if err != nil {
		return breakendWindows{}
	}
	// Traversal continues across the junction into the partner side in the
	// opposite orientation, hence the reverse complement.
	bpSeq := truncateAtUnknown(anchorSeq + b.InsSeq + ReverseComplement(partnerAnchor))
	bpLen := len(bpSeq) - shrunk
	if bpLen < 0 {
		bpLen = 0
	}

	refSeq, err := ExtractReferenceSequence(b, shrunk, bpLen+opts.Margin, src)
	if err != nil {
		return breakendWindows{}
	}
	return breakendWindows{
		shrunk: shrunk,
		bpSeq:  bpSeq,
		refSeq: truncateAtUnknown(refSeq),
	}
}
