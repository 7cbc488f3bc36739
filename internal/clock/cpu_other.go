//go:build !unix

package clock

import "time"

var processStart = time.Now()

// cpuTime - Falls back to wall time since process start where getrusage is not available
func cpuTime() time.Duration {
	return time.Since(processStart)
}
