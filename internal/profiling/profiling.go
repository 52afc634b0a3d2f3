// Package profiling accumulates wall time per named task over one frame.
// Hosts call ResetFrame at the top of each frame and read TopN when a frame
// runs long.
package profiling

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Sample is one task's accumulated time and call count within a frame.
type Sample struct {
	Name  string
	Total time.Duration
	Calls int
}

var (
	mu    sync.Mutex
	frame = make(map[string]*Sample)
)

// Track starts timing name and returns the function that stops it.
//
//	defer profiling.Track("renderer.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		record(name, time.Since(start))
	}
}

func record(name string, d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := frame[name]
	if !ok {
		s = &Sample{Name: name}
		frame[name] = s
	}
	s.Total += d
	s.Calls++
}

// ResetFrame drops everything recorded so far.
func ResetFrame() {
	mu.Lock()
	clear(frame)
	mu.Unlock()
}

// Samples returns the frame's samples, slowest first; equal totals are
// ordered by name.
func Samples() []Sample {
	mu.Lock()
	out := make([]Sample, 0, len(frame))
	for _, s := range frame {
		out = append(out, *s)
	}
	mu.Unlock()

	slices.SortFunc(out, func(a, b Sample) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Lookup returns the sample recorded under name, if any.
func Lookup(name string) (Sample, bool) {
	mu.Lock()
	defer mu.Unlock()
	if s, ok := frame[name]; ok {
		return *s, true
	}
	return Sample{}, false
}

// SumWithPrefix adds up the totals of every task whose name starts with
// prefix, e.g. "renderer." for the whole render pass.
func SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for _, s := range Samples() {
		if strings.HasPrefix(s.Name, prefix) {
			sum += s.Total
		}
	}
	return sum
}

// TopN formats the n slowest tasks as "name:1.5ms, other:0.2ms".
func TopN(n int) string {
	samples := Samples()
	samples = samples[:min(n, len(samples))]

	var b strings.Builder
	for i, s := range samples {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%s", s.Name, formatMs(s.Total))
	}
	return b.String()
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000)
	return strings.TrimSuffix(s, ".0") + "ms"
}
