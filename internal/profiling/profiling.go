package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight CPU timing accumulator for tick-level insights.

type bucket struct {
	total time.Duration
	calls int
}

var (
	mu      sync.Mutex
	buckets = make(map[string]bucket)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("meshing.BuildChunk")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		b := buckets[name]
		b.total += d
		b.calls++
		buckets[name] = b
		mu.Unlock()
	}
}

// Reset clears the accumulated totals. Call at the start of each tick.
func Reset() {
	mu.Lock()
	buckets = make(map[string]bucket)
	mu.Unlock()
}

// Summary formats the top n entries by total time, busiest first.
// Example: "meshing.BuildChunk: 4.2ms/128, snapshot.ReadFile: 1.1ms/1"
func Summary(n int) string {
	mu.Lock()
	type entry struct {
		name string
		bucket
	}
	list := make([]entry, 0, len(buckets))
	for k, v := range buckets {
		list = append(list, entry{k, v})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].total > list[j].total })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s: %.1fms/%d", list[i].name, ms, list[i].calls))
	}
	return strings.Join(parts, ", ")
}
