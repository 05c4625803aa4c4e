package host

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownParam is returned when a parameter name or index is not one of
// the oscillator slots.
var ErrUnknownParam = errors.New("unknown parameter")

// ParamMax is the largest raw value a parameter knob reports.
const ParamMax = 1023

// ParamID identifies one of the oscillator's parameter slots.
type ParamID uint16

const (
	Param1 ParamID = iota
	Param2
	Param3
	Param4
	Param5
	Param6
	Shape
	ShiftShape

	NumParams = int(ShiftShape) + 1
)

var paramNames = [NumParams]string{
	"param1", "param2", "param3", "param4", "param5", "param6", "shape", "shiftshape",
}

// String returns the slot name.
func (id ParamID) String() string {
	if int(id) < NumParams {
		return paramNames[id]
	}
	return fmt.Sprintf("param(%d)", uint16(id))
}

// ParseParamID maps a slot name (case-insensitive; "shift-shape" and
// "id1".."id6" also accepted) to its ID.
func ParseParamID(name string) (ParamID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "")
	n = strings.ReplaceAll(n, "_", "")
	if strings.HasPrefix(n, "id") && len(n) == 3 {
		n = "param" + n[2:]
	}
	for i, s := range paramNames {
		if s == n {
			return ParamID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

// ParamToFloat decodes a raw 10-bit parameter value to [0, 1].
func ParamToFloat(raw uint16) float32 {
	if raw >= ParamMax {
		return 1
	}
	return float32(raw) * (1.0 / ParamMax)
}

// FloatToParam encodes a normalized value as a raw parameter value.
func FloatToParam(v float32) uint16 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return ParamMax
	}
	return uint16(v*ParamMax + 0.5)
}
