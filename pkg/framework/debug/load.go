package debug

import (
	"fmt"
	"time"
)

// LoadMeter tracks how long rendering takes relative to the audio it
// produces. A load of 100% means rendering runs exactly at real time.
type LoadMeter struct {
	sampleRate float64
	blocks     uint64
	frames     uint64
	total      time.Duration
	worst      time.Duration
	worstLen   int
}

// NewLoadMeter creates a meter for audio at sampleRate Hz.
func NewLoadMeter(sampleRate float64) *LoadMeter {
	return &LoadMeter{sampleRate: sampleRate}
}

// Record adds one rendered block of frames that took elapsed.
func (m *LoadMeter) Record(frames int, elapsed time.Duration) {
	m.blocks++
	m.frames += uint64(frames)
	m.total += elapsed
	if frames > 0 && m.blockLoad(elapsed, frames) > m.blockLoad(m.worst, m.worstLen) {
		m.worst = elapsed
		m.worstLen = frames
	}
}

// Time runs fn as one block of frames and records it.
func (m *LoadMeter) Time(frames int, fn func()) {
	start := time.Now()
	fn()
	m.Record(frames, time.Since(start))
}

func (m *LoadMeter) blockLoad(elapsed time.Duration, frames int) float64 {
	if frames == 0 || m.sampleRate <= 0 {
		return 0
	}
	budget := float64(frames) / m.sampleRate * float64(time.Second)
	return float64(elapsed) / budget * 100
}

// Blocks returns the number of recorded blocks.
func (m *LoadMeter) Blocks() uint64 { return m.blocks }

// Frames returns the number of recorded frames.
func (m *LoadMeter) Frames() uint64 { return m.frames }

// AverageLoad returns total render time as a percentage of audio time.
func (m *LoadMeter) AverageLoad() float64 {
	if m.frames == 0 || m.sampleRate <= 0 {
		return 0
	}
	audio := float64(m.frames) / m.sampleRate * float64(time.Second)
	return float64(m.total) / audio * 100
}

// PeakLoad returns the load of the slowest block.
func (m *LoadMeter) PeakLoad() float64 {
	return m.blockLoad(m.worst, m.worstLen)
}

// Reset clears all measurements.
func (m *LoadMeter) Reset() {
	*m = LoadMeter{sampleRate: m.sampleRate}
}

// Report summarizes the measurements.
func (m *LoadMeter) Report() string {
	return fmt.Sprintf("blocks=%d frames=%d render=%s load avg=%.3f%% peak=%.3f%%",
		m.blocks, m.frames, m.total, m.AverageLoad(), m.PeakLoad())
}
