package shufflecheck

import (
	"encoding/binary"
	"hash"
)

// mergeTally is the outcome of draining all worker streams through the
// merge frontier.
type mergeTally struct {
	total      uint64 // values emitted
	duplicates uint64 // values equal to their immediate predecessor
}

// mergeStreams drains the worker streams as one globally sorted sequence
// via a k-way merge and counts the values that equal their immediate
// predecessor — the evidence of a collision. Each emitted mantissa is also
// folded into digest in emission order.
//
// The frontier holds at most one candidate per still-non-empty stream, so
// auxiliary memory stays at O(workers) beyond the streams themselves. That
// bound is the reason for merging heap-drains instead of flattening
// everything into one global sort or hash set: at ~10^9 elements the
// streams alone already occupy several gigabytes.
//
// Streams assigned an empty partition contribute nothing and are treated
// as already exhausted at initialization. The first emitted value has no
// predecessor and can never count as a duplicate.
//
// mergeStreams consumes the streams: on return every stream is empty.
func mergeStreams(streams []*mantissaStream, digest hash.Hash64, progressInterval int64, rep Reporter) mergeTally {
	frontier := newFrontierHeap(len(streams))
	for i, s := range streams {
		if s.len() > 0 {
			frontier.push(s.pop(), i)
		}
	}

	var tally mergeTally
	var prev uint64
	var buf [8]byte
	for frontier.len() > 0 {
		e := frontier.pop()

		if tally.total > 0 && e.val == prev {
			tally.duplicates++
		}
		tally.total++
		prev = e.val

		binary.LittleEndian.PutUint64(buf[:], e.val)
		_, _ = digest.Write(buf[:]) // hash.Hash Write never returns an error

		if tally.total%uint64(progressInterval) == 0 {
			rep.MergeProgress(tally.total)
		}

		// Refill the frontier from the stream that just advanced
		if src := streams[e.source]; src.len() > 0 {
			frontier.push(src.pop(), e.source)
		}
	}

	return tally
}
