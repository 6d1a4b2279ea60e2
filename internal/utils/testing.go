package utils

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	defaultPreSleepDuration = 20 * time.Millisecond
)

// ReadMemStats runs a garbage collection and returns the memory stats collected right after it.
func ReadMemStats() *runtime.MemStats {
	runtime.GC()
	stats := new(runtime.MemStats)
	runtime.ReadMemStats(stats)
	return stats
}

// AssertNoMemoryLeak checks that at most maxAllocDelta bytes are still allocated compared to startStats
// (see ReadMemStats). This function should be called at the end of a test case, after the
// tested values have been released.
func AssertNoMemoryLeak(t *testing.T, startStats *runtime.MemStats, maxAllocDelta uint64) {
	runtime.GC()
	time.Sleep(defaultPreSleepDuration)
	memStats := ReadMemStats()

	if startStats.Alloc > memStats.Alloc {
		return
	}

	delta := memStats.Alloc - startStats.Alloc
	if delta > maxAllocDelta {
		failureMsg := "memory leak"

		if delta > 1_000_000 {
			assert.FailNowf(t, failureMsg, "%d MB", delta/uint64(1_000_000))
		} else if delta > 1_000 {
			assert.FailNowf(t, failureMsg, "%d kB", delta/uint64(1_000))
		} else {
			assert.FailNowf(t, failureMsg, "%d B", delta)
		}
	}
}
