package param

import (
	"fmt"

	"github.com/justyntemme/thuemorse/pkg/host"
)

// OscillatorSlots returns a registry holding the eight oscillator knob
// slots, keyed by host.ParamID. None of them shape the sound yet.
func OscillatorSlots() *Registry {
	r := NewRegistry()
	for i := 0; i < host.NumParams; i++ {
		id := host.ParamID(i)
		b := New(uint32(id), id.String()).
			Range(0, host.ParamMax).
			Steps(host.ParamMax).
			Reserved().
			Formatter(KnobFormatter, KnobParser)
		switch id {
		case host.Shape:
			b.ShortName("SHPE")
		case host.ShiftShape:
			b.ShortName("SHFT")
		}
		if err := r.Add(b.Build()); err != nil {
			panic(fmt.Sprintf("param: oscillator slots: %v", err))
		}
	}
	return r
}

// Slot finds an oscillator slot by name, short name or any spelling
// host.ParseParamID accepts ("shift-shape", "id3").
func (r *Registry) Slot(name string) (*Parameter, error) {
	if p := r.ByName(name); p != nil {
		return p, nil
	}
	id, err := host.ParseParamID(name)
	if err != nil {
		return nil, err
	}
	if p := r.Get(uint32(id)); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", host.ErrUnknownParam, name)
}
