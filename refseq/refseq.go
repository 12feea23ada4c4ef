// Package refseq provides random access to reference genome base sequences.
package refseq

// Source exposes reference contig sequences.  Coordinates are 1-based and
// inclusive.  Callers clip requests into [1, ContigLength] before fetching;
// out-of-range requests are errors, not padded.
type Source interface {
	// Fetch returns the bases of contig in [start, end].
	Fetch(contig string, start, end int) (string, error)
	// ContigLength returns the length of contig, and whether the contig is
	// known to the source.
	ContigLength(contig string) (int, bool)
}
