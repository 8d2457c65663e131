// Package clock lets the assembly pipeline and workshop read time through
// an interface, so elapsed times and stored timestamps are testable.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/robot-forge/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns the current system time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Since is time.Since measured on c
func Since(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}
