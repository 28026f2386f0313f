package shufflecheck

import (
	"context"

	"golang.org/x/sync/errgroup"

	shuffleerrors "github.com/tamirms/shufflecheck/errors"
)

// Result is the aggregate answer of one verification run.
type Result struct {
	// Total is the number of values emitted by the merge: exactly
	// domainMax - domainMin on a successful run.
	Total uint64

	// Duplicates is the number of merged values equal to their immediate
	// predecessor. Zero means the mapping is injective over the domain;
	// anything else is a collision count.
	Duplicates uint64

	// Digest is the streaming hash of the merged sequence. It depends
	// only on the domain and the digest algorithm, not on the worker
	// count, so equal domains must yield equal digests.
	Digest uint64
}

// Verify exhaustively maps every value in [domainMin, domainMax) through
// the fixed-point Park–Miller generator and reports how many outputs
// collide. A duplicate count of zero proves the mapping is a true
// permutation of the domain; a non-zero count measures its failure of
// injectivity.
//
// The run has two strict phases. First, the domain is split into
// contiguous partitions and one producer per partition generates its
// values into a private sorted stream; producers share no mutable state
// and run fully in parallel. After all producers have finished (a hard
// barrier — a failed worker aborts the whole run rather than silently
// dropping its partition), the streams are merged single-threaded through
// a bounded frontier, counting duplicates between consecutive emissions.
//
// Verify blocks until the run completes. ctx cancellation is observed
// between bounded batches of generator work and fails the run; there is
// no partial-success mode.
//
// Configuration errors (non-positive worker count or progress interval,
// empty domain, unknown digest) are returned before any work starts.
func Verify(ctx context.Context, domainMin, domainMax int64, opts ...Option) (Result, error) {
	cfg := defaultVerifyConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.progressInterval <= 0 {
		return Result{}, shuffleerrors.ErrInvalidProgressInterval
	}

	digest, err := newDigest(cfg.digest)
	if err != nil {
		return Result{}, err
	}

	parts, err := partitionDomain(cfg.workers, domainMin, domainMax)
	if err != nil {
		return Result{}, err
	}

	// Producer phase: one goroutine per partition, each exclusively
	// owning its stream until the group-wide barrier below.
	streams := make([]*mantissaStream, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		i, part := i, part
		streams[i] = newMantissaStream(part.size())
		g.Go(func() error {
			return produce(gctx, i, part, streams[i], cfg.progressInterval, cfg.reporter)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Merge phase: sequential by design, so the duplicate count and the
	// digest are deterministic.
	tally := mergeStreams(streams, digest, cfg.progressInterval, cfg.reporter)
	cfg.reporter.Final(tally.total, tally.duplicates)

	return Result{
		Total:      tally.total,
		Duplicates: tally.duplicates,
		Digest:     digest.Sum64(),
	}, nil
}
