package session

import (
	"fmt"

	"github.com/justyntemme/thuemorse/pkg/dsp"
	"github.com/justyntemme/thuemorse/pkg/engine"
	"github.com/justyntemme/thuemorse/pkg/framework/debug"
	"github.com/justyntemme/thuemorse/pkg/framework/param"
	"github.com/justyntemme/thuemorse/pkg/host"
	"github.com/justyntemme/thuemorse/pkg/midi"
)

// Session renders a voice block by block over a fixed duration, applying
// timeline events at the start of the block they fall in.
type Session struct {
	cfg   Config
	log   *debug.Logger
	rt    *host.Logue
	voice engine.Voice
	load  *debug.LoadMeter

	queue   *midi.EventQueue
	pending []midi.Event
	params  host.Params
	slots   *param.Registry

	pos   int64
	total int64
}

// New validates cfg, builds its voice and queues its events. A nil log
// uses the default logger.
func New(cfg Config, log *debug.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = debug.Default()
	}

	s := &Session{
		cfg:   cfg,
		log:   log.With("session"),
		rt:    host.NewLogue(cfg.SampleRate),
		load:  debug.NewLoadMeter(cfg.SampleRate),
		queue: midi.NewEventQueue(),
		slots: param.OscillatorSlots(),
		total: cfg.Frames(),
	}

	switch kind := cfg.VoiceKind(); kind {
	case dsp.VoiceThueMorse:
		e := engine.New(s.rt)
		e.SetLogger(s.log.With("engine"))
		s.voice = e
	case dsp.VoiceTriangle:
		s.voice = engine.NewTriangle(s.rt)
	default:
		return nil, fmt.Errorf("%w: voice %s", ErrInvalidConfig, kind)
	}

	s.Reset()
	s.log.Info("%s voice, %d frames at %g Hz, note %s fine %d, %d events queued",
		cfg.VoiceKind(), s.total, cfg.SampleRate, midi.NoteNumberToName(uint8(cfg.Note)), cfg.Fine, s.queue.Size())
	return s, nil
}

// Reset rewinds to the start: the voice is re-initialized, the note is
// pressed and the timeline is re-queued.
func (s *Session) Reset() {
	s.pos = 0
	s.params = host.Params{Pitch: host.NewPitch(uint8(s.cfg.Note), s.cfg.Fine)}
	s.queue.Clear()
	events := s.cfg.TimelineEvents()
	s.queue.AddMultiple(events)
	s.pending = make([]midi.Event, 0, len(events))
	s.load.Reset()
	s.slots.ResetAll()

	s.voice.Init()
	s.voice.NoteOn()
}

// Next renders the next block into out: at most BlockSize frames, fewer
// when out is shorter or the session is nearly done. It returns the number
// of frames written, 0 once Done.
func (s *Session) Next(out []int32) int {
	n := int64(len(out))
	if bs := int64(s.cfg.BlockSize); n > bs {
		n = bs
	}
	if rem := s.total - s.pos; n > rem {
		n = rem
	}
	if n <= 0 {
		return 0
	}

	s.pending = s.queue.Drain(s.pending[:0], s.pos+n)
	for _, e := range s.pending {
		s.dispatch(e)
	}

	block := out[:n]
	s.load.Time(int(n), func() { s.voice.Render(s.params, block) })

	s.pos += n
	return int(n)
}

func (s *Session) dispatch(e midi.Event) {
	switch ev := e.(type) {
	case midi.NoteOnEvent:
		s.params.Pitch = ev.Pitch()
		s.voice.NoteOn()
	case midi.NoteOffEvent:
		s.voice.NoteOff()
	case midi.ParamEvent:
		s.voice.SetParam(ev.ID, ev.Value)
		if p := s.slots.Get(uint32(ev.ID)); p != nil {
			p.SetValue(float64(host.ParamToFloat(ev.Value)))
			note := ""
			if p.HasFlag(param.IsReserved) {
				note = " (reserved)"
			}
			s.log.Debug("frame %d: %s = %s%s", s.pos, p.Name, p.FormatValue(p.GetValue()), note)
		}
	}
}

// RenderAll renders whatever remains of the session into a new buffer.
func (s *Session) RenderAll() []int32 {
	out := make([]int32, s.total-s.pos)
	for off := 0; off < len(out); {
		n := s.Next(out[off:])
		if n == 0 {
			break
		}
		off += n
	}
	s.log.Debug("render: %s", s.load.Report())
	return out
}

// Done reports whether every frame has been rendered.
func (s *Session) Done() bool { return s.pos >= s.total }

// Position returns the number of frames rendered so far.
func (s *Session) Position() int64 { return s.pos }

// Total returns the number of frames the session renders.
func (s *Session) Total() int64 { return s.total }

// SampleRate returns the render rate in Hz.
func (s *Session) SampleRate() float64 { return s.cfg.SampleRate }

// Config returns the session config.
func (s *Session) Config() Config { return s.cfg }

// Voice returns the voice being driven.
func (s *Session) Voice() engine.Voice { return s.voice }

// Params returns the per-block parameters the next block renders with.
func (s *Session) Params() host.Params { return s.params }

// Knobs returns the last value each oscillator slot received from the
// timeline, whichever voice is playing.
func (s *Session) Knobs() *param.Registry { return s.slots }

// Load returns the render-time meter.
func (s *Session) Load() *debug.LoadMeter { return s.load }
