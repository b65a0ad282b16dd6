package clock

import "time"

// Clock abstracts time.Now so date-sensitive logic can be tested with a
// fixed clock.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
