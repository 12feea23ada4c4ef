package main

/*
sv-overlap matches structural-variant breakpoints between two BEDPE call
sets and reports, for every query breakend, how many subject breakends it
matched under the configured positional and size tolerances.
*/

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Al3n70rn/StructuralVariantAnnotation/bedpe"
	"github.com/Al3n70rn/StructuralVariantAnnotation/breakend"
	"github.com/Al3n70rn/StructuralVariantAnnotation/overlap"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"
)

var (
	maxGap         = flag.Int("maxgap", overlap.DefaultOpts.MaxGap, "Number of bases each breakend interval is widened by before the overlap test")
	minOverlap     = flag.Int("minoverlap", overlap.DefaultOpts.MinOverlap, "Minimum number of bases two widened intervals must share")
	ignoreStrand   = flag.Bool("ignore-strand", overlap.DefaultOpts.IgnoreStrand, "Allow breakends on opposite strands to match")
	sizeMargin     = flag.Float64("sizemargin", overlap.DefaultOpts.SizeMargin, "Event-size tolerance as a fraction of the smaller event; negative disables size filtering")
	restrictMargin = flag.Float64("restrict-margin-to-size-multiple", overlap.DefaultOpts.RestrictMarginToSizeMultiple, "Cap on breakend distance as a multiple of the smaller event size; <=0 disables")
	bestOnly       = flag.Bool("best-only", false, "Assign each subject breakpoint to its single highest-scoring query breakpoint before counting")
	countsOut      = flag.String("counts-out", "", "Per-query-breakend hit count TSV path; empty writes to stdout")
	matchesOut     = flag.String("matches-out", "", "Optional per-match TSV path")
	parallelism    = flag.Int("parallelism", 0, "Maximum number of simultaneous overlap-join shards; 0 = runtime.NumCPU()")
)

func usage() {
	fmt.Printf("Usage: %s [OPTIONS] query.bedpe subject.bedpe\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func writeMatches(path string, query, subject *breakend.Store, matches []overlap.Match) (err error) {
	ctx := vcontext.Background()
	var dst file.File
	if dst, err = file.Create(ctx, path); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, dst, &err)
	w := tsv.NewWriter(dst.Writer(ctx))
	w.WriteString("queryid\tsubjectid\tsizeerror\tlocalbperror\tremotebperror")
	if err = w.EndLine(); err != nil {
		return err
	}
	for _, m := range matches {
		w.WriteString(query.Get(m.Query).ID)
		w.WriteString(subject.Get(m.Subject).ID)
		if m.ErrorsComputed {
			w.WriteString(strconv.Itoa(m.SizeError))
			w.WriteString(strconv.Itoa(m.LocalBPError))
			w.WriteString(strconv.Itoa(m.RemoteBPError))
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

func writeCounts(path string, query *breakend.Store, counts []int) (err error) {
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
	w.WriteString("id\tchrom\tstart\tend\tstrand\thits")
	if err = w.EndLine(); err != nil {
		return err
	}
	for i, c := range counts {
		b := query.Get(i)
		w.WriteString(b.ID)
		w.WriteString(b.Contig)
		w.WriteString(strconv.Itoa(b.Start))
		w.WriteString(strconv.Itoa(b.End))
		w.WriteString(b.Strand.String())
		w.WriteString(strconv.Itoa(c))
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
		log.Fatalf("Expected exactly two positional arguments (query.bedpe subject.bedpe), got %d", flag.NArg())
	}
	query, err := bedpe.ReadStore(flag.Arg(0), "query")
	if err != nil {
		log.Fatalf("Failed to load query breakpoints: %v", err)
	}
	subject, err := bedpe.ReadStore(flag.Arg(1), "subject")
	if err != nil {
		log.Fatalf("Failed to load subject breakpoints: %v", err)
	}

	opts := overlap.Opts{
		MaxGap:                       *maxGap,
		MinOverlap:                   *minOverlap,
		IgnoreStrand:                 *ignoreStrand,
		SizeMargin:                   *sizeMargin,
		RestrictMarginToSizeMultiple: *restrictMargin,
		Parallelism:                  *parallelism,
	}
	matches, err := overlap.FindBreakpointMatches(query, subject, opts)
	if err != nil {
		log.Fatalf("Breakpoint matching failed: %v", err)
	}
	log.Printf("%d breakpoint match(es) between %d query and %d subject breakend(s)\n",
		len(matches), query.Len(), subject.Len())

	if *matchesOut != "" {
		if err := writeMatches(*matchesOut, query, subject, matches); err != nil {
			log.Fatalf("Failed to write matches: %v", err)
		}
	}
	counts := overlap.CountMatches(matches, query.Len(), *bestOnly, func(q int) float64 {
		return query.Get(q).Quality
	})
	if err := writeCounts(*countsOut, query, counts); err != nil {
		log.Fatalf("Failed to write counts: %v", err)
	}
}
