package clock

import (
	"time"

	"riminspect/shared/timezone"
)

// Clock supplies the current time in the application timezone. Services take
// a Clock instead of calling time.Now so tests can pin the wall clock.
type Clock interface {
	Now() time.Time
}

type appClock struct{}

func (appClock) Now() time.Time {
	return timezone.Now()
}

// New returns the production clock backed by the configured app timezone.
func New() Clock {
	return appClock{}
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
