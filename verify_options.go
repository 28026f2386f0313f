package shufflecheck

// defaultProgressInterval is how many values pass between advisory
// progress events when WithProgressInterval is not supplied.
const defaultProgressInterval = 1_000_000

// Option is a functional option for configuring a verification run.
type Option func(*verifyConfig)

type verifyConfig struct {
	workers          int
	progressInterval int64
	reporter         Reporter
	digest           DigestID
}

func defaultVerifyConfig() *verifyConfig {
	return &verifyConfig{
		workers:          1, // Default to single-threaded; use WithWorkers(n) to parallelize
		progressInterval: defaultProgressInterval,
		reporter:         NopReporter{},
		digest:           DigestXXHash64,
	}
}

// WithWorkers sets the number of parallel producer workers. The domain is
// split into that many contiguous partitions. Must be positive.
func WithWorkers(n int) Option {
	return func(c *verifyConfig) {
		c.workers = n
	}
}

// WithProgressInterval sets how many values pass between progress events,
// both per worker during production and globally during the merge. Must
// be positive. Progress events are advisory and do not affect the result.
func WithProgressInterval(n int64) Option {
	return func(c *verifyConfig) {
		c.progressInterval = n
	}
}

// WithReporter sets the sink for progress events and the final tally.
// The default discards everything.
func WithReporter(r Reporter) Option {
	return func(c *verifyConfig) {
		c.reporter = r
	}
}

// WithDigest selects the streaming hash folded over the merged sequence.
// Default is DigestXXHash64.
func WithDigest(id DigestID) Option {
	return func(c *verifyConfig) {
		c.digest = id
	}
}
