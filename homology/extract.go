// Package homology scores sequence homology around structural-variant
// breakpoints against the reference genome.
package homology

import (
	"strings"

	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/Al3n70rn/StructuralVariantAnnotation/refseq"
	"github.com/pkg/errors"
)

// UnknownBase pads sequence windows that run past a contig boundary.
const UnknownBase = 'N'

// ExtractReferenceSequence returns the reference bases around a breakend,
// oriented in the breakend's direction of traversal: anchoredBases lead into
// the breakpoint and followingBases continue past it.  For a reverse-strand
// breakend the window is mirrored and the fetched bases are
// reverse-complemented, so "anchored" always means "leading into the
// breakpoint left-to-right as traversed".  Positions outside the contig are
// padded with UnknownBase; the result always has exactly
// anchoredBases+followingBases characters.
//
// The breakend must be a single point (constrict interval-backed stores
// first).
func ExtractReferenceSequence(b *breakend.Breakend, anchoredBases, followingBases int, src refseq.Source) (string, error) {
	contigLen, ok := src.ContigLength(b.Contig)
	if !ok {
		return "", errors.Errorf("homology: unknown contig %q", b.Contig)
	}
	pos := b.Pos()
	var lo, hi int
	if b.Strand == breakend.Forward {
		lo, hi = pos-anchoredBases+1, pos+followingBases
	} else {
		lo, hi = pos-followingBases, pos+anchoredBases-1
	}
	total := hi - lo + 1
	if total <= 0 {
		return "", nil
	}
	fetchLo, fetchHi := lo, hi
	if fetchLo < 1 {
		fetchLo = 1
	}
	if fetchHi > contigLen {
		fetchHi = contigLen
	}
	var seq string
	if fetchLo <= fetchHi {
		var err error
		if seq, err = src.Fetch(b.Contig, fetchLo, fetchHi); err != nil {
			return "", err
		}
	} else {
		// The whole window is off-contig.
		fetchLo, fetchHi = lo, lo-1
	}
	padded := strings.Repeat(string(rune(UnknownBase)), fetchLo-lo) +
		seq +
		strings.Repeat(string(rune(UnknownBase)), hi-fetchHi)
	if b.Strand == breakend.Reverse {
		padded = ReverseComplement(padded)
	}
	return padded, nil
}

var complement = func() (t [256]byte) {
	for i := range t {
		t[i] = UnknownBase
	}
	for _, p := range [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'},
		{'a', 't'}, {'c', 'g'}, {'g', 'c'}, {'t', 'a'},
		{'n', 'n'},
	} {
		t[p[0]] = p[1]
	}
	return t
}()

// ReverseComplement returns the reverse complement of a DNA sequence.  Bases
// outside ACGT (either case) complement to UnknownBase.
func ReverseComplement(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = complement[s[len(s)-1-i]]
	}
	return string(out)
}

// truncateAtUnknown cuts a sequence at its first UnknownBase.
func truncateAtUnknown(s string) string {
	if i := strings.IndexByte(s, UnknownBase); i >= 0 {
		return s[:i]
	}
	return s
}

// trimToKnownSuffix keeps the suffix after the last UnknownBase.  Extraction
// returns windows in traversal order, so an anchor clipped at a contig
// boundary carries its padding as a prefix and its junction-adjacent bases at
// the end.
func trimToKnownSuffix(s string) string {
	if i := strings.LastIndexByte(s, UnknownBase); i >= 0 {
		return s[i+1:]
	}
	return s
}
