package hull

import (
	"fmt"

	"github.com/pkg/errors"
)

// Arguments the caller got wrong. These fail eagerly and are never
// retried; everything retryable stays internal to Compute.
var (
	ErrTooFewPoints = errors.New("concave hull requires at least 3 distinct points")
	ErrInvalidK     = errors.New("neighbour count must be at least 3 and less than the number of distinct points")
)

// HullNotFoundError reports that every neighbour count up to the point
// count failed to produce a containing ring. LastK records the final count
// attempted, for diagnostics.
type HullNotFoundError struct {
	LastK int
}

func (e *HullNotFoundError) Error() string {
	return fmt.Sprintf("no concave hull could be constructed (last attempted k=%d)", e.LastK)
}
