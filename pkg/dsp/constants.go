// Package dsp provides digital signal processing utilities and algorithms.
package dsp

// Common audio constants used throughout the DSP packages and the engine.
const (
	// Phase constants
	TwoPi  = 6.283185307179586
	Pi     = 3.141592653589793
	HalfPi = 1.5707963267948966

	// Common sample rates
	SampleRate44k1 = 44100.0
	SampleRate48k  = 48000.0
	SampleRate96k  = 96000.0

	// Block sizes. MaxBlockSize is the largest block the hardware host hands
	// to an oscillator in one render call.
	MinBlockSize     = 1
	DefaultBlockSize = 64
	MaxBlockSize     = 64

	// Note range accepted by the pitch tables.
	MinNote = 0
	MaxNote = 151

	// MaxNoteHz is the highest frequency the pitch conversion will produce.
	MaxNoteHz = 23679.643054

	// TuningA4 is the reference pitch for note 69.
	TuningA4 = 440.0

	// Small values for comparisons
	Epsilon = 1e-6
)

// VoiceKind identifies which oscillator a session renders.
type VoiceKind int

const (
	VoiceUnknown VoiceKind = iota
	VoiceThueMorse
	VoiceTriangle
)

// String returns the string representation of a VoiceKind
func (v VoiceKind) String() string {
	switch v {
	case VoiceThueMorse:
		return "thuemorse"
	case VoiceTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// ParseVoiceKind maps a voice name back to its kind.
func ParseVoiceKind(name string) VoiceKind {
	switch name {
	case "thuemorse", "thue-morse", "":
		return VoiceThueMorse
	case "triangle", "tri":
		return VoiceTriangle
	default:
		return VoiceUnknown
	}
}
