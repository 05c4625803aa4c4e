package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/thuemorse/pkg/dsp/oscillator"
	"github.com/justyntemme/thuemorse/pkg/dsp/q31"
	"github.com/justyntemme/thuemorse/pkg/framework/debug"
	"github.com/justyntemme/thuemorse/pkg/host"
)

func newTestEngine(t testing.TB) *Engine {
	t.Helper()
	e := New(host.NewLogue(48000))
	e.SetLogger(debug.New(&bytes.Buffer{}, "test", 0))
	e.Init()
	return e
}

func TestInitSeedsSequence(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, uint8(0x69), e.Resolution())
	assert.Equal(t, uint64(8), e.SequenceIndex())
	assert.Zero(t, e.Phase())
	assert.False(t, e.ResetPending())
	assert.Zero(t, e.Glide().Start())
	assert.Zero(t, e.Glide().Progress())
}

func TestInitLogsResolution(t *testing.T) {
	var buf bytes.Buffer
	log := debug.New(&buf, "test", 0)
	log.SetLevel(debug.LogLevelDebug)

	e := New(host.NewLogue(48000))
	e.SetLogger(log)
	e.Init()
	assert.Contains(t, buf.String(), "init: resolution=0x69 index=8")
}

func TestInitIsRepeatable(t *testing.T) {
	e := newTestEngine(t)
	out := make([]int32, 300)
	e.Render(host.Params{Pitch: host.NewPitch(60, 0)}, out)
	e.NoteOn()

	e.Init()
	assert.Equal(t, uint8(0x69), e.Resolution())
	assert.Equal(t, uint64(8), e.SequenceIndex())
	assert.False(t, e.ResetPending())
	assert.Zero(t, e.Phase())
}

func TestRenderFillsBlock(t *testing.T) {
	e := newTestEngine(t)
	p := host.Params{Pitch: host.NewPitch(69, 0)}

	for _, n := range []int{1, 7, 64} {
		out := make([]int32, n+1)
		out[n] = 12345
		e.Render(p, out[:n])
		assert.Equal(t, int32(12345), out[n], "render wrote past the block of %d", n)
	}
}

func TestFirstSampleIsSilent(t *testing.T) {
	e := newTestEngine(t)
	out := make([]int32, 4)
	e.Render(host.Params{Pitch: host.NewPitch(60, 0)}, out)

	assert.Zero(t, out[0])
	// 0x69 selects a positive level, so the ramp starts heading up
	assert.Greater(t, out[3], int32(0))
}

func TestRetargetsAfterRamp(t *testing.T) {
	e := newTestEngine(t)
	out := make([]int32, 250)
	e.Render(host.Params{Pitch: host.NewPitch(60, 0)}, out)

	assert.Equal(t, uint64(10), e.SequenceIndex())
	assert.Equal(t, uint64(2), e.Glide().Ramps())
}

func TestBlockSizeDoesNotChangeOutput(t *testing.T) {
	p := host.Params{Pitch: host.NewPitch(60, 0)}

	whole := make([]int32, 640)
	a := newTestEngine(t)
	a.Render(p, whole)

	split := make([]int32, 0, 640)
	b := newTestEngine(t)
	block := make([]int32, 37)
	for len(split) < 640 {
		n := len(block)
		if rem := 640 - len(split); rem < n {
			n = rem
		}
		b.Render(p, block[:n])
		split = append(split, block[:n]...)
	}

	assert.Equal(t, whole, split)
}

func TestOutputIgnoresPitch(t *testing.T) {
	low := newTestEngine(t)
	high := newTestEngine(t)

	a := make([]int32, 512)
	b := make([]int32, 512)
	low.Render(host.Params{Pitch: host.NewPitch(24, 0)}, a)
	high.Render(host.Params{Pitch: host.NewPitch(96, 200)}, b)

	assert.Equal(t, a, b)
	assert.NotEqual(t, low.Increment(), high.Increment())
}

func TestOutputMatchesGlide(t *testing.T) {
	e := newTestEngine(t)
	var g oscillator.Glide
	g.Seed()

	out := make([]int32, 1000)
	e.Render(host.Params{Pitch: host.NewPitch(60, 0)}, out)
	for i, s := range out {
		require.Equal(t, q31.FromFloat32(g.Sample()), s, "sample %d", i)
	}
}

func TestNoteOnResetsPhaseAtNextBlock(t *testing.T) {
	e := newTestEngine(t)
	p := host.Params{Pitch: host.NewPitch(69, 0)}
	out := make([]int32, 64)

	e.Render(p, out)
	require.NotZero(t, e.Phase())

	e.NoteOn()
	assert.True(t, e.ResetPending())
	assert.NotZero(t, e.Phase(), "note on must not touch phase immediately")

	e.Render(p, out[:1])
	assert.False(t, e.ResetPending())
	assert.InDelta(t, e.Increment(), e.Phase(), 1e-6)
}

func TestNoteOnDoesNotRestartGlide(t *testing.T) {
	e := newTestEngine(t)
	p := host.Params{Pitch: host.NewPitch(60, 0)}
	out := make([]int32, 150)
	e.Render(p, out)
	idx := e.SequenceIndex()

	e.NoteOn()
	e.NoteOff()
	e.Render(p, out[:1])
	assert.Equal(t, idx, e.SequenceIndex())
	assert.NotZero(t, out[0])
}

func TestPhaseStaysInRange(t *testing.T) {
	e := newTestEngine(t)
	out := make([]int32, 64)
	p := host.Params{Pitch: host.NewPitch(127, 255)}
	for i := 0; i < 200; i++ {
		e.Render(p, out)
		ph := e.Phase()
		require.GreaterOrEqual(t, ph, float32(0))
		require.Less(t, ph, float32(1))
	}
}

func TestSetParamStoresValue(t *testing.T) {
	e := newTestEngine(t)

	e.SetParam(host.Shape, 1023)
	e.SetParam(host.Param3, 0)
	e.SetParam(host.ParamID(99), 512)

	assert.InDelta(t, 1.0, e.Params().Get(uint32(host.Shape)).GetValue(), 1e-9)
	assert.Zero(t, e.Params().Get(uint32(host.Param3)).GetValue())
	assert.Nil(t, e.Params().Get(99))

	// slots are reserved: output is unchanged
	ref := newTestEngine(t)
	a := make([]int32, 300)
	b := make([]int32, 300)
	p := host.Params{Pitch: host.NewPitch(60, 0), ShapeLFO: 1 << 30}
	e.Render(p, a)
	ref.Render(p, b)
	assert.Equal(t, a, b)
}

func TestRenderDoesNotAllocate(t *testing.T) {
	e := newTestEngine(t)
	out := make([]int32, 64)
	p := host.Params{Pitch: host.NewPitch(60, 0)}

	allocs := testing.AllocsPerRun(100, func() {
		e.NoteOn()
		e.Render(p, out)
	})
	assert.Zero(t, allocs)
}

func TestTriangleVoice(t *testing.T) {
	v := NewTriangle(host.NewLogue(48000))
	v.Init()
	v.NoteOn()

	out := make([]int32, 48000)
	v.Render(host.Params{Pitch: host.NewPitch(69, 0)}, out)

	// 440 Hz for one second: count rising zero crossings
	crossings := 0
	for i := 1; i < len(out); i++ {
		if out[i-1] < 0 && out[i] >= 0 {
			crossings++
		}
	}
	assert.InDelta(t, 440, crossings, 2)
	assert.Equal(t, q31.Min, out[0])
}

func BenchmarkRender(b *testing.B) {
	e := newTestEngine(b)
	out := make([]int32, 64)
	p := host.Params{Pitch: host.NewPitch(60, 0)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Render(p, out)
	}
}
