package internal

import (
	"time"
)

// RunStats counters for a single run
type RunStats struct {
	start        time.Time
	BytesRead    int
	LinesScanned int
	Matches      int
}

func (s *RunStats) Start() {
	s.start = time.Now()
}

func (s *RunStats) Elapsed() time.Duration {
	return time.Since(s.start)
}
