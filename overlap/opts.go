// Package overlap matches structural-variant breakpoints between two
// breakend stores.  Matching proceeds in two stages: an interval-overlap join
// over individual breakends, then a partner-consistency pass that promotes
// breakend hits to symmetric breakpoint matches and applies size and
// breakend-position tolerance filters.
package overlap

// Opts configures breakpoint matching.
type Opts struct {
	// MaxGap expands each breakend's supporting interval by this many bases
	// on both sides before the overlap test.
	MaxGap int
	// MinOverlap is the minimum number of bases the two expanded intervals
	// must share.
	MinOverlap int
	// IgnoreStrand allows breakends on opposite strands to overlap.
	IgnoreStrand bool

	// SizeMargin is the tolerance, as a fraction of the smaller event's
	// maximum size, for matching breakpoints of nominally different sizes.
	// Negative disables size and breakend-position filtering entirely.
	SizeMargin float64
	// RestrictMarginToSizeMultiple bounds how far apart the matched
	// breakends themselves may sit, as a multiple of the smaller event's
	// maximum size.  Without it a tiny event could match a far larger one
	// whenever MaxGap is configured loosely.  Zero or negative disables the
	// restriction.
	RestrictMarginToSizeMultiple float64

	// Parallelism caps the number of concurrent overlap-join shards.
	// 0 means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MaxGap:                       100,
	MinOverlap:                   1,
	IgnoreStrand:                 false,
	SizeMargin:                   0.25,
	RestrictMarginToSizeMultiple: 0.5,
}
