package debug

import (
	"strings"
	"testing"
	"time"
)

func TestLoadMeter(t *testing.T) {
	m := NewLoadMeter(48000)

	// 480 frames = 10ms of audio
	m.Record(480, time.Millisecond)
	m.Record(480, 3*time.Millisecond)

	if m.Blocks() != 2 || m.Frames() != 960 {
		t.Fatalf("unexpected counts: blocks=%d frames=%d", m.Blocks(), m.Frames())
	}
	if got := m.AverageLoad(); got < 19.9 || got > 20.1 {
		t.Errorf("AverageLoad = %f, want 20", got)
	}
	if got := m.PeakLoad(); got < 29.9 || got > 30.1 {
		t.Errorf("PeakLoad = %f, want 30", got)
	}
	if !strings.Contains(m.Report(), "blocks=2") {
		t.Errorf("Report missing block count: %s", m.Report())
	}

	m.Reset()
	if m.Blocks() != 0 || m.AverageLoad() != 0 {
		t.Error("Reset should clear measurements")
	}
}

func TestLoadMeterTime(t *testing.T) {
	m := NewLoadMeter(48000)
	called := false
	m.Time(64, func() { called = true })

	if !called {
		t.Error("Time should run the block")
	}
	if m.Blocks() != 1 || m.Frames() != 64 {
		t.Errorf("unexpected counts: blocks=%d frames=%d", m.Blocks(), m.Frames())
	}
}
