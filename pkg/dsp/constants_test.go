package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMathConstants(t *testing.T) {
	assert.InDelta(t, math.Pi, Pi, 1e-12)
	assert.InDelta(t, 2*math.Pi, TwoPi, 1e-12)
	assert.InDelta(t, math.Pi/2, HalfPi, 1e-12)
}

func TestRanges(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
	}{
		{"BlockSize", MinBlockSize, MaxBlockSize},
		{"Note", MinNote, MaxNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Less(t, tt.min, tt.max)
		})
	}

	assert.LessOrEqual(t, float64(DefaultBlockSize), float64(MaxBlockSize))
	assert.Less(t, MaxNoteHz, SampleRate48k/2)
}

func TestVoiceKind(t *testing.T) {
	tests := []struct {
		name string
		kind VoiceKind
	}{
		{"thuemorse", VoiceThueMorse},
		{"thue-morse", VoiceThueMorse},
		{"", VoiceThueMorse},
		{"triangle", VoiceTriangle},
		{"tri", VoiceTriangle},
		{"saw", VoiceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, ParseVoiceKind(tt.name))
		})
	}

	assert.Equal(t, "thuemorse", VoiceThueMorse.String())
	assert.Equal(t, "triangle", VoiceTriangle.String())
	assert.Equal(t, "unknown", VoiceKind(42).String())
}
