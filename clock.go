package lrumap

import "time"

// Clock provides the time source for the timestamp policy.
// The default implementation uses time.Now(). Inject a fake via
// WithClock to control timestamps in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
