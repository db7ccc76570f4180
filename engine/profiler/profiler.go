package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and frame time statistics for the frame loop.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	intervalStart  time.Time
	lastFrame      time.Time
	updateInterval time.Duration

	minFrame time.Duration
	maxFrame time.Duration

	memStats runtime.MemStats
}

// NewProfiler creates a new Profiler with a 1 second update interval.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	now := time.Now()
	return &Profiler{
		intervalStart:  now,
		lastFrame:      now,
		updateInterval: time.Second,
	}
}

// Tick should be called once per frame. Tracks per-frame duration and logs
// FPS, min/max frame time, and heap usage when the update interval elapses.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()
	frame := now.Sub(p.lastFrame)
	p.lastFrame = now
	p.frameCount++

	if p.minFrame == 0 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}

	elapsed := now.Sub(p.intervalStart)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	log.Printf("[profiler] FPS: %.2f | frame: %.2f-%.2f ms | heap: %.2f MB",
		fps,
		float64(p.minFrame.Microseconds())/1000.0,
		float64(p.maxFrame.Microseconds())/1000.0,
		heapMB,
	)

	p.frameCount = 0
	p.intervalStart = now
	p.minFrame = 0
	p.maxFrame = 0
	return true
}
