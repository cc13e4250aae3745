package debug

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Profiler collects timing statistics for named sections of a render.
type Profiler struct {
	mu           sync.Mutex
	measurements map[string]*Measurement
}

// Measurement holds timing statistics for a profiled section.
type Measurement struct {
	Count uint64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// NewProfiler creates an empty profiler.
func NewProfiler() *Profiler {
	return &Profiler{measurements: make(map[string]*Measurement)}
}

// Start begins timing a named section. Call the returned function to stop.
func (p *Profiler) Start(name string) func() {
	start := time.Now()
	return func() {
		p.record(name, time.Since(start))
	}
}

func (p *Profiler) record(name string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, exists := p.measurements[name]
	if !exists {
		m = &Measurement{Min: elapsed, Max: elapsed}
		p.measurements[name] = m
	}
	m.Count++
	m.Total += elapsed
	if elapsed < m.Min {
		m.Min = elapsed
	}
	if elapsed > m.Max {
		m.Max = elapsed
	}
}

// Measurement returns a copy of the statistics for name.
func (p *Profiler) Measurement(name string) (Measurement, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, exists := p.measurements[name]
	if !exists {
		return Measurement{}, false
	}
	return *m, true
}

// Reset clears all measurements.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.measurements = make(map[string]*Measurement)
}

// Report formats every measurement, one per line, sorted by name.
func (p *Profiler) Report() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.measurements) == 0 {
		return "no measurements recorded"
	}

	names := make([]string, 0, len(p.measurements))
	for name := range p.measurements {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		m := p.measurements[name]
		fmt.Fprintf(&sb, "%s: count=%d total=%v avg=%v min=%v max=%v\n",
			name, m.Count, m.Total, m.Average(), m.Min, m.Max)
	}
	return sb.String()
}

// Average returns the mean time per call.
func (m Measurement) Average() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.Total / time.Duration(m.Count)
}

// Load returns the average processing time of one block of blockSize
// samples as a percentage of the block's playback time.
func (m Measurement) Load(blockSize int, sampleRate float64) float64 {
	if m.Count == 0 || blockSize <= 0 || sampleRate <= 0 {
		return 0
	}
	blockDuration := float64(blockSize) / sampleRate * float64(time.Second)
	return float64(m.Average()) / blockDuration * 100.0
}
