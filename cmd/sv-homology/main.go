package main

/*
sv-homology scores sequence homology around each breakpoint in a BEDPE call
set against a FASTA reference, reporting exact and inexact homology lengths
and the inexact alignment score per breakend.
*/

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Al3n70rn/StructuralVariantAnnotation/align"
	"github.com/Al3n70rn/StructuralVariantAnnotation/bedpe"
	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/Al3n70rn/StructuralVariantAnnotation/homology"
	"github.com/Al3n70rn/StructuralVariantAnnotation/refseq"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
)

var (
	anchorLength = flag.Int("anchor", homology.DefaultOpts.AnchorLength, "Number of reference bases anchoring each alignment")
	margin       = flag.Int("margin", homology.DefaultOpts.Margin, "Extra reference bases fetched beyond the breakpoint sequence")
	match        = flag.Int("match", homology.DefaultOpts.Match, "Alignment match bonus")
	mismatch     = flag.Int("mismatch", homology.DefaultOpts.Mismatch, "Alignment mismatch penalty (negative)")
	gapOpen      = flag.Int("gap-open", homology.DefaultOpts.GapOpen, "Alignment gap opening cost")
	gapExtend    = flag.Int("gap-extend", homology.DefaultOpts.GapExtend, "Alignment gap extension cost")
	outPath      = flag.String("out", "", "Output TSV path; empty writes to stdout")
	parallelism  = flag.Int("parallelism", 0, "Maximum number of simultaneous scoring jobs; 0 = runtime.NumCPU()")
)

func usage() {
	fmt.Printf("Usage: %s [OPTIONS] calls.bedpe ref.fa\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func writeResults(path string, store *breakend.Store, results []homology.Result) (err error) {
	ctx := vcontext.Background()
	var w *tsv.Writer
	if path == "" {
		w = tsv.NewWriter(os.Stdout)
	} else {
		var dst file.File
		if dst, err = file.Create(ctx, path); err != nil {
			return err
		}
		defer file.CloseAndReport(ctx, dst, &err)
		w = tsv.NewWriter(dst.Writer(ctx))
	}
	w.WriteString("id\tchrom\tpos\tstrand\texacthomlen\tinexacthomlen\tinexacthomscore")
	if err = w.EndLine(); err != nil {
		return err
	}
	for i, r := range results {
		b := store.Get(i)
		w.WriteString(b.ID)
		w.WriteString(b.Contig)
		w.WriteString(strconv.Itoa(b.Pos()))
		w.WriteString(b.Strand.String())
		if r.Defined {
			w.WriteString(strconv.Itoa(r.ExactHomLen))
			w.WriteString(strconv.Itoa(r.InexactHomLen))
			w.WriteString(strconv.Itoa(r.InexactScore))
		} else {
			w.WriteString(".")
			w.WriteString(".")
			w.WriteString(".")
		}
		if err = w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 2 {
		log.Fatalf("Expected exactly two positional arguments (calls.bedpe ref.fa), got %d", flag.NArg())
	}
	store, err := bedpe.ReadStore(flag.Arg(0), "bedpe")
	if err != nil {
		log.Fatalf("Failed to load breakpoints: %v", err)
	}
	ref, err := refseq.NewFastaFromPath(flag.Arg(1))
	if err != nil {
		log.Fatalf("Failed to load reference: %v", err)
	}

	contigLengths := make(map[string]int)
	for i := 0; i < store.Len(); i++ {
		contig := store.Get(i).Contig
		if _, ok := contigLengths[contig]; ok {
			continue
		}
		if n, ok := ref.ContigLength(contig); ok {
			contigLengths[contig] = n
		}
	}
	constricted, err := store.Constrict(breakend.ConstrictMiddle, contigLengths)
	if err != nil {
		log.Fatalf("Constriction failed: %v", err)
	}

	opts := homology.Opts{
		AnchorLength: *anchorLength,
		Margin:       *margin,
		Match:        *match,
		Mismatch:     *mismatch,
		GapOpen:      *gapOpen,
		GapExtend:    *gapExtend,
		Parallelism:  *parallelism,
	}
	results, err := homology.ScoreReferenceHomology(constricted, ref, align.SmithWaterman{}, opts)
	if err != nil {
		log.Fatalf("Homology scoring failed: %v", err)
	}
	if err := writeResults(*outPath, constricted, results); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
}
