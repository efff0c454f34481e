package rdate

import "time"

// Clock supplies the current instant to every "now" path in the package:
// Today, Now, NowDateTime, DateTime.Since and Timestamp.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// hostClock and hostLocation stand in for the system clock and the host's
// local zone. Integer timestamps are read and produced in hostLocation.
// Tests replace them; nothing else writes to them.
var (
	hostClock    Clock          = systemClock{}
	hostLocation *time.Location = time.Local
)

func now() time.Time {
	return hostClock.Now().In(hostLocation)
}
