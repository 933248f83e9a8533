// Package perf measures frame throughput over a rolling window, plus named
// section timings inside a frame. Single-goroutine use only, on the thread
// that drives the frame loop.
package perf

import "time"

// Monitor keeps the last windowSize frame durations in a ring.
type Monitor struct {
	window    []time.Duration
	next      int
	filled    int
	lastFrame time.Time
	frames    int

	sections     map[string][]time.Duration
	sectionStart time.Time
	sectionName  string
}

// NewMonitor builds a monitor with the given rolling window (frames).
func NewMonitor(windowSize int) *Monitor {
	if windowSize <= 0 {
		windowSize = 60
	}
	return &Monitor{
		window:   make([]time.Duration, windowSize),
		sections: make(map[string][]time.Duration),
	}
}

// StartFrame marks a frame boundary. The first call only arms the clock.
func (m *Monitor) StartFrame() {
	now := time.Now()
	if m.frames > 0 {
		m.window[m.next] = now.Sub(m.lastFrame)
		m.next = (m.next + 1) % len(m.window)
		if m.filled < len(m.window) {
			m.filled++
		}
	}
	m.lastFrame = now
	m.frames++
}

// FPS returns the windowed average frame rate, 0 before two frames.
func (m *Monitor) FPS() float64 {
	avg := m.avgFrame()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// FrameTimeMS returns the windowed average frame time in milliseconds.
func (m *Monitor) FrameTimeMS() float64 {
	return float64(m.avgFrame()) / float64(time.Millisecond)
}

func (m *Monitor) avgFrame() time.Duration {
	if m.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < m.filled; i++ {
		sum += m.window[i]
	}
	return sum / time.Duration(m.filled)
}

// StartSection begins a named timing span; EndSection closes it. Spans do
// not nest.
func (m *Monitor) StartSection(name string) {
	m.sectionName = name
	m.sectionStart = time.Now()
}

func (m *Monitor) EndSection() {
	if m.sectionName == "" {
		return
	}
	d := time.Since(m.sectionStart)
	name := m.sectionName
	m.sectionName = ""
	times := append(m.sections[name], d)
	if len(times) > len(m.window) {
		times = times[1:]
	}
	m.sections[name] = times
}

// SectionMS returns the average time of a named section in milliseconds.
func (m *Monitor) SectionMS(name string) float64 {
	times := m.sections[name]
	if len(times) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range times {
		sum += d
	}
	return float64(sum) / float64(len(times)) / float64(time.Millisecond)
}
