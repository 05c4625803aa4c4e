// Package midi holds the timed note and parameter events that drive a
// voice over a rendered timeline.
package midi

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/justyntemme/thuemorse/pkg/dsp"
	"github.com/justyntemme/thuemorse/pkg/host"
)

type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
	EventTypeParam
)

func (t EventType) String() string {
	switch t {
	case EventTypeNoteOff:
		return "note_off"
	case EventTypeNoteOn:
		return "note_on"
	case EventTypeParam:
		return "param"
	default:
		return fmt.Sprintf("event(%d)", uint8(t))
	}
}

// ParseEventType accepts the names produced by EventType.String.
func ParseEventType(name string) (EventType, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "note_on", "noteon", "on":
		return EventTypeNoteOn, nil
	case "note_off", "noteoff", "off":
		return EventTypeNoteOff, nil
	case "param", "parameter":
		return EventTypeParam, nil
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// Event is something that happens at a sample position on the timeline.
type Event interface {
	Type() EventType
	SampleOffset() int64
	String() string
}

type BaseEvent struct {
	Offset int64
}

func (e BaseEvent) SampleOffset() int64 {
	return e.Offset
}

// NoteOnEvent starts a note. Pitch is applied from the block it lands in.
type NoteOnEvent struct {
	BaseEvent
	NoteNumber uint8
	Fine       uint8
	Velocity   uint8
}

func (e NoteOnEvent) Type() EventType {
	return EventTypeNoteOn
}

func (e NoteOnEvent) Pitch() host.Pitch {
	return host.NewPitch(e.NoteNumber, e.Fine)
}

func (e NoteOnEvent) String() string {
	return fmt.Sprintf("NoteOn{note:%d, fine:%d, vel:%d, offset:%d}",
		e.NoteNumber, e.Fine, e.Velocity, e.Offset)
}

type NoteOffEvent struct {
	BaseEvent
	NoteNumber uint8
}

func (e NoteOffEvent) Type() EventType {
	return EventTypeNoteOff
}

func (e NoteOffEvent) String() string {
	return fmt.Sprintf("NoteOff{note:%d, offset:%d}", e.NoteNumber, e.Offset)
}

// ParamEvent moves one parameter slot to a raw 10-bit value.
type ParamEvent struct {
	BaseEvent
	ID    host.ParamID
	Value uint16
}

func (e ParamEvent) Type() EventType {
	return EventTypeParam
}

func (e ParamEvent) String() string {
	return fmt.Sprintf("Param{id:%s, val:%d, offset:%d}", e.ID, e.Value, e.Offset)
}

// FrequencyToNote returns the nearest note to freq, clamped to 0-127.
func FrequencyToNote(freq, tuningA4 float64) uint8 {
	if tuningA4 == 0 {
		tuningA4 = dsp.TuningA4
	}
	if freq <= 0 {
		return 0
	}
	note := 69.0 + 12.0*math.Log2(freq/tuningA4)
	if note < 0 {
		return 0
	}
	if note > 127 {
		return 127
	}
	return uint8(note + 0.5)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func NoteNumberToName(note uint8) string {
	octave := int(note/12) - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}

// ParseNote accepts a note number ("60") or a name with octave ("C4",
// "f#3", "Bb2").
func ParseNote(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		if n > dsp.MaxNote {
			return 0, fmt.Errorf("note %d out of range 0-%d", n, dsp.MaxNote)
		}
		return uint8(n), nil
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid note %q", s)
	}

	var pc int
	switch strings.ToUpper(s[:1]) {
	case "C":
		pc = 0
	case "D":
		pc = 2
	case "E":
		pc = 4
	case "F":
		pc = 5
	case "G":
		pc = 7
	case "A":
		pc = 9
	case "B":
		pc = 11
	default:
		return 0, fmt.Errorf("invalid note %q", s)
	}
	rest := s[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		pc++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		pc--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note %q: %w", s, err)
	}
	n := (octave+1)*12 + pc
	if n < dsp.MinNote || n > dsp.MaxNote {
		return 0, fmt.Errorf("note %q out of range", s)
	}
	return uint8(n), nil
}
