package shufflecheck

import (
	mrand "math/rand"
	"slices"
	"testing"
)

func buildStreams(t *testing.T, contents ...[]uint64) []*mantissaStream {
	t.Helper()
	streams := make([]*mantissaStream, len(contents))
	for i, vals := range contents {
		streams[i] = newMantissaStream(int64(len(vals)))
		for _, v := range vals {
			streams[i].push(v)
		}
	}
	return streams
}

// refTally is the brute-force reference: flatten, sort, count adjacent
// equal pairs.
func refTally(contents ...[]uint64) mergeTally {
	var all []uint64
	for _, vals := range contents {
		all = append(all, vals...)
	}
	slices.Sort(all)

	tally := mergeTally{total: uint64(len(all))}
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			tally.duplicates++
		}
	}
	return tally
}

func runMerge(t *testing.T, streams []*mantissaStream) mergeTally {
	t.Helper()
	digest, err := newDigest(DigestXXHash64)
	if err != nil {
		t.Fatalf("newDigest failed: %v", err)
	}
	return mergeStreams(streams, digest, 1<<30, NopReporter{})
}

func TestMergeStreams(t *testing.T) {
	testCases := []struct {
		name     string
		contents [][]uint64
	}{
		{
			// Two cross-stream 4s and one in-stream repeated 4
			name:     "cross_and_in_stream_duplicates",
			contents: [][]uint64{{1, 4, 4, 9}, {2, 4, 7}, {3, 5}},
		},
		{
			name:     "disjoint_strictly_increasing",
			contents: [][]uint64{{1, 10, 100}, {2, 20, 200}, {3, 30, 300}},
		},
		{
			name:     "empty_stream_among_sources",
			contents: [][]uint64{{1, 2}, {}, {2, 3}},
		},
		{
			name:     "all_streams_empty",
			contents: [][]uint64{{}, {}},
		},
		{
			name:     "single_stream",
			contents: [][]uint64{{7, 7, 7}},
		},
		{
			name:     "no_streams",
			contents: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := runMerge(t, buildStreams(t, tc.contents...))
			want := refTally(tc.contents...)
			if got != want {
				t.Errorf("merge tally = %+v, want %+v", got, want)
			}
		})
	}
}

// TestMergeStreamsSpecCase pins the canonical worked example:
// [1,4,4,9] + [2,4,7] + [3,5] emits 9 values with 2 duplicates.
func TestMergeStreamsSpecCase(t *testing.T) {
	got := runMerge(t, buildStreams(t, []uint64{1, 4, 4, 9}, []uint64{2, 4, 7}, []uint64{3, 5}))
	if got.total != 9 {
		t.Errorf("total = %d, want 9", got.total)
	}
	if got.duplicates != 2 {
		t.Errorf("duplicates = %d, want 2", got.duplicates)
	}
}

// TestMergeStreamsRandom cross-checks the k-way merge against the
// brute-force reference on random multisets with a biased value range to
// force collisions.
func TestMergeStreamsRandom(t *testing.T) {
	rng := mrand.New(mrand.NewSource(3))

	for trial := 0; trial < 50; trial++ {
		contents := make([][]uint64, 1+rng.Intn(6))
		for i := range contents {
			vals := make([]uint64, rng.Intn(200))
			for j := range vals {
				vals[j] = rng.Uint64() % 64 // Small range so duplicates are common
			}
			contents[i] = vals
		}

		got := runMerge(t, buildStreams(t, contents...))
		want := refTally(contents...)
		if got != want {
			t.Fatalf("trial %d: merge tally = %+v, want %+v", trial, got, want)
		}
	}
}

// TestMergeStreamsConsumesStreams verifies the ownership contract: the
// merge drains every stream to empty.
func TestMergeStreamsConsumesStreams(t *testing.T) {
	streams := buildStreams(t, []uint64{1, 2, 3}, []uint64{4, 5})
	runMerge(t, streams)
	for i, s := range streams {
		if s.len() != 0 {
			t.Errorf("stream %d not drained: %d values left", i, s.len())
		}
	}
}

// TestMergeStreamsDigestIsPartitionInvariant verifies that splitting the
// same multiset differently across streams does not change the digest:
// the emitted sequence is the sorted multiset either way.
func TestMergeStreamsDigestIsPartitionInvariant(t *testing.T) {
	vals := []uint64{5, 1, 4, 4, 2, 9, 7, 3, 5, 0}

	digestOf := func(contents ...[]uint64) uint64 {
		digest, err := newDigest(DigestXXHash64)
		if err != nil {
			t.Fatalf("newDigest failed: %v", err)
		}
		mergeStreams(buildStreams(t, contents...), digest, 1<<30, NopReporter{})
		return digest.Sum64()
	}

	whole := digestOf(vals)
	split := digestOf(vals[:3], vals[3:7], vals[7:])
	if whole != split {
		t.Errorf("digest differs across partitionings: %016x vs %016x", whole, split)
	}
}
