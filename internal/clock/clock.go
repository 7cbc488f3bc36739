// Package clock measures benchmark phases in process CPU time and wall time.
package clock

import (
	"github.com/wadetb/hashtable/internal/conf"
	"time"
)

// Sample - Elapsed time of a measured phase
type Sample struct {
	CPU  time.Duration
	Wall time.Duration
}

// Ticks - Returns the CPU time in ticks of conf.TicksPerSecond
func (S Sample) Ticks() int64 {
	return S.CPU.Nanoseconds() / (int64(time.Second) / conf.TicksPerSecond)
}

// Stopwatch - Measures CPU and wall time since it was started
type Stopwatch struct {
	cpu  time.Duration
	wall time.Time
}

// Start - Returns a running stopwatch
func Start() Stopwatch {
	return Stopwatch{cpu: cpuTime(), wall: time.Now()}
}

// Elapsed - Returns the time since Start
func (S Stopwatch) Elapsed() Sample {
	return Sample{
		CPU:  cpuTime() - S.cpu,
		Wall: time.Since(S.wall),
	}
}
