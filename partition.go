package shufflecheck

import (
	shuffleerrors "github.com/tamirms/shufflecheck/errors"
)

// partition is one contiguous sub-range [Lo, Hi) of the integer domain,
// assigned to exactly one worker.
type partition struct {
	Lo int64 // inclusive
	Hi int64 // exclusive
}

func (p partition) size() int64 {
	return p.Hi - p.Lo
}

// partitionDomain splits [domainMin, domainMax) into workers contiguous
// sub-ranges by proportional truncating slicing: boundary i sits at
// domainMin + span*i/workers with the quotient truncated toward the
// domain origin. The ranges are not necessarily equal-sized, but their
// union is exactly the domain, with no gap and no overlap:
// the first range starts at domainMin, the last ends at domainMax, and
// each range begins where its predecessor ended.
//
// Deterministic and side-effect free. A non-positive worker count or an
// empty domain is a configuration error.
func partitionDomain(workers int, domainMin, domainMax int64) ([]partition, error) {
	if workers <= 0 {
		return nil, shuffleerrors.ErrInvalidWorkerCount
	}
	if domainMax <= domainMin {
		return nil, shuffleerrors.ErrInvalidDomain
	}

	span := domainMax - domainMin
	parts := make([]partition, workers)
	for i := range parts {
		parts[i] = partition{
			Lo: domainMin + span*int64(i)/int64(workers),
			Hi: domainMin + span*int64(i+1)/int64(workers),
		}
	}
	return parts, nil
}
