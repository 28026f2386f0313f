package shufflecheck

import (
	"context"
	"fmt"

	"github.com/tamirms/shufflecheck/internal/lehmer"
)

// contextCheckInterval is how often a producer checks for context
// cancellation while iterating its partition.
const contextCheckInterval = 10000

// produce runs one worker: it walks the partition, generates the mantissa
// for every domain value, and pushes it into the worker's private stream.
//
// The stream is exclusively owned by this worker for the duration of the
// call; it is handed off to the merge phase only after every producer has
// returned. A generator postcondition failure aborts the run (the error
// cancels the surrounding errgroup), since a silently dropped partition
// would corrupt the completeness guarantee the duplicate count depends on.
func produce(ctx context.Context, worker int, part partition, stream *mantissaStream, progressInterval int64, rep Reporter) error {
	total := part.size()
	for v := part.Lo; v < part.Hi; v++ {
		done := v - part.Lo
		if done%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if done%progressInterval == 0 {
			rep.Progress(worker, done, total)
		}

		m, err := lehmer.Mantissa(v)
		if err != nil {
			return fmt.Errorf("worker %d: %w", worker, err)
		}
		stream.push(m)
	}

	rep.WorkerDone(worker, stream.len())
	return nil
}
