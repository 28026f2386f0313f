// Package shufflecheck exhaustively verifies that a deterministic
// pseudo-random mapping over a bounded integer domain is injective — a
// true shuffle rather than a hash with collisions.
//
// The mapping under test is a fixed-point decimal Park–Miller generator
// (internal/lehmer) that must reproduce bit-exact results regardless of
// execution order. Shufflecheck enumerates the full domain in parallel,
// buffers each partition's outputs in a worker-private min-heap, and then
// drains all heaps through a bounded k-way merge, counting consecutive
// equal values. Peak auxiliary memory beyond the buffered values is
// O(workers), which is what makes ~10^9-element domains tractable without
// a global hash set or a full global sort.
//
// # Basic Usage
//
//	res, err := shufflecheck.Verify(ctx, 1, 1_000_000_000,
//	    shufflecheck.WithWorkers(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d duplicates across %d values\n", res.Duplicates, res.Total)
//
// A Duplicates count of zero proves the generator permutes the domain.
//
// # Package Structure
//
//   - Public API: verify.go (Verify, Result), reporter.go (Reporter)
//   - Configuration: verify_options.go (Option, With* functions)
//   - Partitioning: partition.go (proportional truncating domain slicing)
//   - Production: producer.go (per-worker generate loop), heap.go (streams)
//   - Merge: merge.go (k-way merge duplicate detection), heap.go (frontier)
//   - Digests: digest.go (DigestID dispatch: xxhash64, xxh3, murmur3)
//   - Generator: internal/lehmer/ (fixed-point Park–Miller arithmetic)
package shufflecheck
