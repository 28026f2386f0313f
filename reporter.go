package shufflecheck

import (
	"fmt"
	"io"
)

// Reporter receives advisory progress events and the final tally. It is a
// pure sink: nothing it does feeds back into the pipeline, and no
// correctness property depends on it.
//
// Progress and WorkerDone are called from worker goroutines and may be
// invoked concurrently; implementations that share state across workers
// must synchronize it themselves. MergeProgress and Final are called from
// the single merge goroutine, after all workers have finished.
type Reporter interface {
	// Progress reports that a worker has generated done of total values
	// in its partition. Emitted every progress-interval values.
	Progress(worker int, done, total int64)

	// WorkerDone reports the final stream size of a finished worker.
	WorkerDone(worker int, streamSize int)

	// MergeProgress reports the number of values emitted by the merge so
	// far. Emitted every progress-interval values.
	MergeProgress(merged uint64)

	// Final reports the total number of merged values and the number of
	// duplicates found among them.
	Final(total, duplicates uint64)
}

// NopReporter discards all events. It is the default reporter.
type NopReporter struct{}

func (NopReporter) Progress(int, int64, int64) {}
func (NopReporter) WorkerDone(int, int)        {}
func (NopReporter) MergeProgress(uint64)       {}
func (NopReporter) Final(uint64, uint64)       {}

// LogReporter writes one human-readable line per event to Out.
//
// Writes from concurrent workers are not serialized beyond what the
// underlying writer provides; os.Stderr and friends keep single short
// lines intact, which is all the event stream needs.
type LogReporter struct {
	Out io.Writer
}

func (r LogReporter) Progress(worker int, done, total int64) {
	fmt.Fprintf(r.Out, "worker %d: %d of %d values\n", worker, done, total)
}

func (r LogReporter) WorkerDone(worker int, streamSize int) {
	fmt.Fprintf(r.Out, "worker %d: done, stream size %d\n", worker, streamSize)
}

func (r LogReporter) MergeProgress(merged uint64) {
	fmt.Fprintf(r.Out, "merge: %d values emitted\n", merged)
}

func (r LogReporter) Final(total, duplicates uint64) {
	fmt.Fprintf(r.Out, "final: %d duplicates across %d values\n", duplicates, total)
}
