package domain

import "time"

// InProgressSession is a started-but-not-finished session. At most one exists
// process-wide; it is persisted so it survives restarts.
type InProgressSession struct {
	StartTime time.Time
	IsWorking bool
}

// Elapsed reports how long the session has been running as of now.
func (s InProgressSession) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
