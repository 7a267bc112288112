package ui

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType selects one of the synthesized effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// renderTone runs gen over every sample of a clip seconds long and
// packs the result as interleaved stereo 16-bit little-endian PCM,
// the format the audio context plays directly. gen receives the
// sample index and its time in seconds and returns a value in [-1, 1].
func renderTone(seconds float64, gen func(i int, t float64) float64) []byte {
	n := int(seconds * sampleRate)
	pcm := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		v := gen(i, float64(i)/sampleRate)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * 32767))
		binary.LittleEndian.PutUint16(pcm[4*i:], s)
		binary.LittleEndian.PutUint16(pcm[4*i+2:], s)
	}
	return pcm
}

// synthClick is a decaying sine tap with a little roughness mixed in,
// the sound of a piece set down on the board.
func synthClick(freq, seconds, gain float64) []byte {
	return renderTone(seconds, func(i int, t float64) float64 {
		rough := 0.3 * (math.Sin(0.3*float64(i)) + math.Sin(0.7*float64(i)))
		return gain * math.Exp(-30*t) * (math.Sin(2*math.Pi*freq*t) + rough)
	})
}

// synthBuzz layers a second harmonic over a sine and fades the pair
// out linearly.
func synthBuzz(freq, seconds, gain float64) []byte {
	return renderTone(seconds, func(_ int, t float64) float64 {
		fade := 1 - t/seconds
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return 0.5 * gain * fade * wave
	})
}

// synthChord mixes a C major triad with a quick attack and a long
// release.
func synthChord(seconds, gain float64) []byte {
	triad := [3]float64{261.63, 329.63, 392.00}
	return renderTone(seconds, func(_ int, t float64) float64 {
		p := t / seconds
		env := 1.0
		switch {
		case p < 0.1:
			env = p / 0.1
		case p > 0.7:
			env = (1 - p) / 0.3
		}
		var sum float64
		for _, f := range triad {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		return gain * env * sum / 3
	})
}

// AudioManager owns the audio context and the synthesized effects.
// Each Play spawns its own player, so effects can overlap.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager builds the context and synthesizes every effect up
// front.
func NewAudioManager() *AudioManager {
	return &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds: map[SoundType][]byte{
			SoundMove:    synthClick(440, 0.08, 0.3),
			SoundCapture: synthClick(330, 0.12, 0.5),
			SoundInvalid: synthBuzz(150, 0.1, 0.3),
			SoundGameEnd: synthChord(0.4, 0.5),
		},
		enabled: true,
		volume:  0.5,
	}
}

// Play starts one effect. A disabled manager stays silent.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	pcm, ok := am.sounds[sound]
	if !ok {
		return
	}
	p := am.context.NewPlayerFromBytes(pcm)
	p.SetVolume(am.volume)
	p.Play()
}

// SetEnabled toggles playback.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}
