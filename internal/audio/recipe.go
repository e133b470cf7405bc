// Package audio synthesizes the short feedback sounds played when a preview
// fires. The recipe table is shared with the code generator so the exported
// snippet sounds like the studio.
package audio

import "github.com/alexisbeaulieu97/toastlab/internal/domain/toast"

// Waveform is an oscillator shape.
type Waveform string

const (
	Sine     Waveform = "sine"
	Square   Waveform = "square"
	Triangle Waveform = "triangle"
)

// Envelope constants shared by every tone: a linear attack to the peak gain
// followed by an exponential decay to Floor at the end of the tone.
const (
	Attack = 0.01
	Floor  = 0.001
)

// Tone is one oscillator event of a recipe. Times are in seconds relative to
// the moment the sound is played.
type Tone struct {
	Wave      Waveform
	Frequency float64
	Start     float64
	Duration  float64
	// Gain is the peak level before the volume is applied.
	Gain float64
}

var recipes = map[toast.SoundPreset][]Tone{
	toast.SoundPop: {
		{Wave: Sine, Frequency: 600, Start: 0, Duration: 0.1, Gain: 1},
	},
	toast.SoundSuccess: {
		{Wave: Sine, Frequency: 440, Start: 0, Duration: 0.2, Gain: 0.5},
		{Wave: Sine, Frequency: 880, Start: 0.05, Duration: 0.3, Gain: 0.3},
	},
	toast.SoundError: {
		{Wave: Square, Frequency: 150, Start: 0, Duration: 0.15, Gain: 0.2},
		{Wave: Square, Frequency: 100, Start: 0.1, Duration: 0.2, Gain: 0.2},
	},
	toast.SoundDigital: {
		{Wave: Triangle, Frequency: 1200, Start: 0, Duration: 0.05, Gain: 0.4},
	},
	toast.SoundDock: {
		{Wave: Sine, Frequency: 80, Start: 0, Duration: 0.3, Gain: 1},
	},
}

// Recipe returns the tones of preset. Unknown presets play pop.
func Recipe(preset toast.SoundPreset) []Tone {
	tones, ok := recipes[preset]
	if !ok {
		tones = recipes[toast.SoundPop]
	}
	return append([]Tone(nil), tones...)
}
