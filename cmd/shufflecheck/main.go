// Shufflecheck exhaustively verifies that the fixed-point Park–Miller
// generator permutes an integer domain (e.g. all valid 9-digit
// identifiers) without collisions.
//
// Usage:
//
//	go run ./cmd/shufflecheck -min 1 -max 1000000000 -workers 10
//
// Flags:
//
//	-min       Inclusive lower domain bound (default: 1)
//	-max       Exclusive upper domain bound (default: 1,000,000,000)
//	-workers   Number of parallel producer workers (default: 10)
//	-progress  Values between progress lines (default: 1,000,000)
//	-digest    Sequence digest: xxhash64, xxh3 or murmur3 (default: xxhash64)
//	-quiet     Suppress progress lines, print only the summary
//
// Exits 0 with a summary line on success, 1 on a configuration error or
// an arithmetic invariant violation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tamirms/shufflecheck"
)

func main() {
	minFlag := flag.Int64("min", 1, "inclusive lower domain bound")
	maxFlag := flag.Int64("max", 1_000_000_000, "exclusive upper domain bound")
	workersFlag := flag.Int("workers", 10, "number of parallel producer workers")
	progressFlag := flag.Int64("progress", 1_000_000, "values between progress lines")
	digestFlag := flag.String("digest", "xxhash64", "sequence digest: xxhash64, xxh3 or murmur3")
	quietFlag := flag.Bool("quiet", false, "suppress progress lines, print only the summary")
	flag.Parse()

	digest, err := shufflecheck.ParseDigestID(*digestFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var reporter shufflecheck.Reporter = shufflecheck.NopReporter{}
	if !*quietFlag {
		reporter = shufflecheck.LogReporter{Out: os.Stderr}
	}

	start := time.Now()
	res, err := shufflecheck.Verify(context.Background(), *minFlag, *maxFlag,
		shufflecheck.WithWorkers(*workersFlag),
		shufflecheck.WithProgressInterval(*progressFlag),
		shufflecheck.WithReporter(reporter),
		shufflecheck.WithDigest(digest),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d duplicates across %d values (%s digest %016x) in %s\n",
		res.Duplicates, res.Total, digest, res.Digest, elapsed.Round(time.Millisecond))
	if rss := maxRSS(); rss > 0 {
		fmt.Printf("peak RSS: %.1f MB\n", float64(rss)/(1024*1024))
	}
}
