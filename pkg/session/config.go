// Package session drives a voice over a timeline of note and parameter
// events, the way a host would, and hands the result to files, streams and
// audio devices.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/justyntemme/thuemorse/pkg/dsp"
	"github.com/justyntemme/thuemorse/pkg/framework/param"
	"github.com/justyntemme/thuemorse/pkg/host"
	"github.com/justyntemme/thuemorse/pkg/midi"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid session config")

const (
	DefaultSampleRate = dsp.SampleRate48k
	DefaultNote       = 60
	DefaultDuration   = 2.0

	MaxSampleRate = 192000
	MaxBlockSize  = 4096
	MaxDuration   = 3600.0
)

// Note is a note number that may be written in YAML as a number or a name
// such as "A4".
type Note uint8

func (n *Note) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: note must be a number or a name", node.Line)
	}
	v, err := midi.ParseNote(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*n = Note(v)
	return nil
}

func (n Note) MarshalYAML() (interface{}, error) {
	return int(n), nil
}

// Knob is a parameter value as written in YAML: a raw step such as 512 or
// a percentage of travel such as "50%".
type Knob string

func (k *Knob) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a number or a percentage", node.Line)
	}
	*k = Knob(node.Value)
	return nil
}

// EventConfig is one timed event. Note and Fine only apply to note_on and
// fall back to the session pitch when unset; Param and Value only apply to
// param events.
type EventConfig struct {
	At    float64 `yaml:"at"`
	Type  string  `yaml:"type"`
	Note  *Note   `yaml:"note,omitempty"`
	Fine  *uint8  `yaml:"fine,omitempty"`
	Param string  `yaml:"param,omitempty"`
	Value Knob    `yaml:"value,omitempty"`
}

// Config describes one render.
type Config struct {
	SampleRate float64       `yaml:"sample_rate"`
	BlockSize  int           `yaml:"block_size"`
	Note       Note          `yaml:"note"`
	Fine       uint8         `yaml:"fine"`
	Duration   float64       `yaml:"duration"`
	Voice      string        `yaml:"voice"`
	Events     []EventConfig `yaml:"events,omitempty"`
}

// DefaultConfig returns two seconds of middle C from the Thue–Morse voice
// at 48 kHz in 64-frame blocks.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		BlockSize:  dsp.DefaultBlockSize,
		Note:       DefaultNote,
		Duration:   DefaultDuration,
		Voice:      dsp.VoiceThueMorse.String(),
	}
}

// LoadConfig reads a YAML config file. Fields it does not set keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates YAML from r on top of DefaultConfig.
// Unknown keys are rejected.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.SampleRate) || c.SampleRate <= 0 || c.SampleRate > MaxSampleRate:
		return invalid("sample_rate %g outside (0, %d]", c.SampleRate, MaxSampleRate)
	case c.BlockSize < dsp.MinBlockSize || c.BlockSize > MaxBlockSize:
		return invalid("block_size %d outside [%d, %d]", c.BlockSize, dsp.MinBlockSize, MaxBlockSize)
	case c.Note > dsp.MaxNote:
		return invalid("note %d above %d", c.Note, dsp.MaxNote)
	case math.IsNaN(c.Duration) || c.Duration <= 0 || c.Duration > MaxDuration:
		return invalid("duration %gs outside (0, %g]", c.Duration, MaxDuration)
	case dsp.ParseVoiceKind(c.Voice) == dsp.VoiceUnknown:
		return invalid("unknown voice %q", c.Voice)
	}

	for i, e := range c.Events {
		if err := e.validate(); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

func (e EventConfig) validate() error {
	if math.IsNaN(e.At) || e.At < 0 {
		return invalid("at %g must not be negative", e.At)
	}
	typ, err := midi.ParseEventType(e.Type)
	if err != nil {
		return invalid("%v", err)
	}

	switch typ {
	case midi.EventTypeNoteOn:
		if e.Note != nil && *e.Note > dsp.MaxNote {
			return invalid("note %d above %d", *e.Note, dsp.MaxNote)
		}
	case midi.EventTypeParam:
		if e.Value == "" {
			return invalid("param event needs a value")
		}
		if _, _, err := e.knob(); err != nil {
			return invalid("%v", err)
		}
	}
	return nil
}

// knob resolves Param through the oscillator slots and encodes Value as a
// raw 10-bit step.
func (e EventConfig) knob() (host.ParamID, uint16, error) {
	slot, err := param.OscillatorSlots().Slot(e.Param)
	if err != nil {
		return 0, 0, err
	}
	v, err := slot.ParseValue(string(e.Value))
	if err != nil {
		return 0, 0, err
	}
	return host.ParamID(slot.ID), host.FloatToParam(float32(v)), nil
}

// Frames returns the total number of frames the config renders.
func (c Config) Frames() int64 {
	return int64(math.Round(c.Duration * c.SampleRate))
}

// VoiceKind returns the parsed voice.
func (c Config) VoiceKind() dsp.VoiceKind {
	return dsp.ParseVoiceKind(c.Voice)
}

// TimelineEvents converts the configured events to sample-stamped events.
// The config must be valid.
func (c Config) TimelineEvents() []midi.Event {
	events := make([]midi.Event, 0, len(c.Events))
	for _, e := range c.Events {
		base := midi.BaseEvent{Offset: int64(math.Round(e.At * c.SampleRate))}
		typ, _ := midi.ParseEventType(e.Type)

		switch typ {
		case midi.EventTypeNoteOn:
			note, fine := uint8(c.Note), c.Fine
			if e.Note != nil {
				note = uint8(*e.Note)
			}
			if e.Fine != nil {
				fine = *e.Fine
			}
			events = append(events, midi.NoteOnEvent{BaseEvent: base, NoteNumber: note, Fine: fine, Velocity: 100})
		case midi.EventTypeNoteOff:
			note := uint8(c.Note)
			if e.Note != nil {
				note = uint8(*e.Note)
			}
			events = append(events, midi.NoteOffEvent{BaseEvent: base, NoteNumber: note})
		case midi.EventTypeParam:
			id, raw, _ := e.knob()
			events = append(events, midi.ParamEvent{BaseEvent: base, ID: id, Value: raw})
		}
	}
	return events
}
