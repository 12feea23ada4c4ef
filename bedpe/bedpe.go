// Package bedpe parses BEDPE paired-interval files into the records the
// breakend package constructs breakpoints from.
//
// Only the first ten columns are interpreted: chrom1 start1 end1 chrom2
// start2 end2 name score strand1 strand2.  Columns beyond the sixth are
// optional.  Input coordinates are zero-based half-open and are converted to
// the one-based inclusive convention used everywhere else in this module.
package bedpe

import (
	"bufio"
	"io"
	"strconv"

	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

func parseStrand(tok string, fallback breakend.Strand) (breakend.Strand, error) {
	switch tok {
	case "+":
		return breakend.Forward, nil
	case "-":
		return breakend.Reverse, nil
	case "", ".":
		return fallback, nil
	}
	return fallback, errors.Errorf("bedpe: invalid strand %q", tok)
}

// parseInterval converts a zero-based half-open [start, end) column pair to
// one-based inclusive bounds.
func parseInterval(startTok, endTok string) (start, end int, err error) {
	s, err := strconv.Atoi(startTok)
	if err != nil {
		return 0, 0, err
	}
	e, err := strconv.Atoi(endTok)
	if err != nil {
		return 0, 0, err
	}
	if s < 0 || e <= s {
		return 0, 0, errors.Errorf("bedpe: invalid coordinate pair [%s, %s)", startTok, endTok)
	}
	return s + 1, e, nil
}

// ReadPairs parses BEDPE records from a reader.  Lines that are empty or
// start with "#", "track" or "browser" are skipped.  A missing or "." score
// becomes NaN; missing strand columns default to +/-, the orientation of a
// simple deletion.
func ReadPairs(reader io.Reader) ([]breakend.PairedInterval, error) {
	scanner := bufio.NewScanner(reader)
	var tokens [10][]byte
	var pairs []breakend.PairedInterval
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 {
			continue
		}
		first := string(tokens[0])
		if first[0] == '#' || first == "track" || first == "browser" {
			continue
		}
		if nToken < 6 {
			return nil, errors.Errorf("bedpe: line %d has %d tokens, expected at least 6", lineIdx, nToken)
		}
		var p breakend.PairedInterval
		var err error
		p.Contig1 = string(tokens[0])
		if p.Start1, p.End1, err = parseInterval(string(tokens[1]), string(tokens[2])); err != nil {
			return nil, errors.Wrapf(err, "bedpe: line %d", lineIdx)
		}
		p.Contig2 = string(tokens[3])
		if p.Start2, p.End2, err = parseInterval(string(tokens[4]), string(tokens[5])); err != nil {
			return nil, errors.Wrapf(err, "bedpe: line %d", lineIdx)
		}
		if nToken > 6 {
			p.Name = string(tokens[6])
		}
		p.Score = breakend.MissingScore()
		if nToken > 7 {
			if scoreTok := string(tokens[7]); scoreTok != "." {
				if p.Score, err = strconv.ParseFloat(scoreTok, 64); err != nil {
					return nil, errors.Wrapf(err, "bedpe: line %d: invalid score", lineIdx)
				}
			}
		}
		p.Strand1, p.Strand2 = breakend.Forward, breakend.Reverse
		if nToken > 8 {
			if p.Strand1, err = parseStrand(string(tokens[8]), breakend.Forward); err != nil {
				return nil, errors.Wrapf(err, "bedpe: line %d", lineIdx)
			}
		}
		if nToken > 9 {
			if p.Strand2, err = parseStrand(string(tokens[9]), breakend.Reverse); err != nil {
				return nil, errors.Wrapf(err, "bedpe: line %d", lineIdx)
			}
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Printf("BEDPE loaded, %d breakpoint(s).\n", len(pairs))
	return pairs, nil
}

// ReadPairsFromPath is a wrapper for ReadPairs that takes a path instead of
// an io.Reader.  Gzipped input is decompressed transparently based on the
// file extension.
func ReadPairsFromPath(path string) (pairs []breakend.PairedInterval, err error) {
	ctx := vcontext.Background()
	var infile file.File
	if infile, err = file.Open(ctx, path); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := infile.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return nil, err
		}
	}
	return ReadPairs(reader)
}

// ReadStore reads a BEDPE file and builds the breakend store for it, using
// prefix to name records without usable names.
func ReadStore(path, prefix string) (*breakend.Store, error) {
	pairs, err := ReadPairsFromPath(path)
	if err != nil {
		return nil, err
	}
	return breakend.FromPairs(pairs, prefix)
}
