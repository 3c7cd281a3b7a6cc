package services

import "time"

// Clock supplies the current instant. Status is always derived from it,
// never stored.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
