package refseq

import (
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// fastaSource holds a whole FASTA reference in memory.
type fastaSource struct {
	seqs     map[string]string
	seqNames []string
}

// NewFasta reads FASTA-formatted data and returns a Source holding all of it
// in memory.  A sequence name is the stretch of characters after '>' up to
// the first space; any following description is ignored.
func NewFasta(r io.Reader) (Source, error) {
	f := &fastaSource{seqs: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1024*1024*256)
	var seqName string
	var seq strings.Builder
	flush := func() error {
		if seq.Len() == 0 && seqName == "" {
			return nil
		}
		if seqName == "" {
			return errors.New("refseq: malformed FASTA data, sequence before first header")
		}
		if _, dup := f.seqs[seqName]; dup {
			return errors.Errorf("refseq: duplicate sequence name %q", seqName)
		}
		f.seqs[seqName] = seq.String()
		f.seqNames = append(f.seqNames, seqName)
		seq.Reset()
		return nil
	}
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			seqName = strings.Split(line[1:], " ")[0]
			if seqName == "" {
				return nil, errors.New("refseq: empty sequence name")
			}
		} else {
			seq.WriteString(line)
		}
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(f.seqNames) == 0 {
		return nil, errors.New("refseq: no sequences in FASTA data")
	}
	return f, nil
}

// NewFastaFromPath is a wrapper for NewFasta that takes a path instead of an
// io.Reader.  Gzipped input is decompressed transparently based on the file
// extension.
func NewFastaFromPath(path string) (src Source, err error) {
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
	return NewFasta(reader)
}

// Fetch implements Source.Fetch.
func (f *fastaSource) Fetch(contig string, start, end int) (string, error) {
	s, ok := f.seqs[contig]
	if !ok {
		return "", errors.Errorf("refseq: sequence not found: %s", contig)
	}
	if start < 1 || end < start || end > len(s) {
		return "", errors.Errorf("refseq: invalid range %d-%d for sequence %s with length %d",
			start, end, contig, len(s))
	}
	return s[start-1 : end], nil
}

// ContigLength implements Source.ContigLength.
func (f *fastaSource) ContigLength(contig string) (int, bool) {
	s, ok := f.seqs[contig]
	return len(s), ok
}

// SeqNames returns the names of all sequences, in order of appearance.
func (f *fastaSource) SeqNames() []string { return f.seqNames }
