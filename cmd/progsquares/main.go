package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"progressive-squares/prof"
	"progressive-squares/progressive"
	"progressive-squares/residue"
)

func main() {
	bound := flag.Uint64("bound", progressive.DefaultBound, "search bound (exclusive)")
	mod := flag.Uint64("mod", progressive.DefaultModulus, "modulus of the quadratic-residue filter (power of two)")
	coprime := flag.Bool("coprime", false, "skip (a,b) pairs with gcd(a,b) > 1 (performance only)")
	reportPath := flag.String("report", "", "optional output path for a JSON run report")
	digest := flag.Bool("digest", false, "print the SHAKE-256 run fingerprint to stderr")
	timings := flag.Bool("timings", false, "print phase timings to stderr")
	flag.Parse()

	start := time.Now()
	set, err := residue.New(*mod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "residue table: %v\n", err)
		os.Exit(1)
	}
	prof.Track(start, "residue-table")

	searcher := &progressive.Searcher{
		Bound:          *bound,
		Residues:       set,
		SkipNonCoprime: *coprime,
	}
	start = time.Now()
	res, err := searcher.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "search: %v\n", err)
		os.Exit(1)
	}
	prof.Track(start, "enumerate")

	start = time.Now()
	rep := progressive.NewReport(res, set.Mod())
	prof.Track(start, "aggregate")

	for _, root := range rep.Roots {
		fmt.Println(root)
	}
	fmt.Println()
	fmt.Println(rep.Sum)

	entries := prof.SnapshotAndReset()
	if *timings {
		prof.Fprint(os.Stderr, entries)
	}

	if *reportPath != "" || *digest {
		rep.TimingsUS = make(map[string]int64, len(entries))
		for _, e := range entries {
			rep.TimingsUS[e.Label] += e.Dur.Microseconds()
		}
		if *digest {
			fmt.Fprintf(os.Stderr, "digest: %x\n", rep.Digest())
		}
		if *reportPath != "" {
			if err := rep.WriteFile(*reportPath); err != nil {
				fmt.Fprintf(os.Stderr, "write report: %v\n", err)
				os.Exit(1)
			}
		}
	}
}
