package game

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// sampleRate is the audio context rate in Hz.
const sampleRate = 44100

// Sounds is the audio collaborator. It subscribes to the four match
// notifications and plays a short synthesized clip for each,
// fire-and-forget. All clips are generated once at startup; there are
// no audio assets on disk.
type Sounds struct {
	ctx *audio.Context

	warning    []byte
	fallen     []byte
	eliminated []byte
	gameOver   []byte
}

// NewSounds builds the clip set. Safe to call more than once; the
// process-wide audio context is reused.
func NewSounds() *Sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Sounds{
		ctx:        ctx,
		warning:    toPCM(envelope(tone(waveSquare, 880, 0.09), 0.005, 0.04), 0.25),
		fallen:     toPCM(envelope(sweep(440, 110, 0.25), 0.005, 0.10), 0.35),
		eliminated: toPCM(envelope(tone(waveNoise, 0, 0.30), 0.002, 0.25), 0.30),
		gameOver:   toPCM(fanfare(), 0.35),
	}
}

// Attach subscribes the clip set to a match's notifications. Must be
// re-applied after a restart, like any other listener.
func (s *Sounds) Attach(ev *Events) {
	if s == nil {
		return
	}
	ev.OnTileWarning(func(TileWarningEvent) { s.play(s.warning) })
	ev.OnTileFallen(func(TileFallenEvent) { s.play(s.fallen) })
	ev.OnPlayerEliminated(func(PlayerEliminatedEvent) { s.play(s.eliminated) })
	ev.OnGameOver(func(GameOverEvent) { s.play(s.gameOver) })
}

func (s *Sounds) play(clip []byte) {
	if s == nil || s.ctx == nil || len(clip) == 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.Play()
}

// --- Clip synthesis ---
// Mono float64 buffers at unity gain, shaped and then packed into the
// 16-bit stereo PCM the audio context expects.

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// tone generates dur seconds of the given waveform at freq Hz.
func tone(w waveform, freq, dur float64) []float64 {
	n := int(dur * sampleRate)
	buf := make([]float64, n)
	phase := 0.0
	inc := freq / sampleRate
	for i := range buf {
		switch w {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1 // #nosec G404 -- noise texture
		}
		phase += inc
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// sweep generates a sine gliding from f0 to f1 Hz over dur seconds.
func sweep(f0, f1, dur float64) []float64 {
	n := int(dur * sampleRate)
	buf := make([]float64, n)
	phase := 0.0
	for i := range buf {
		t := float64(i) / float64(n)
		f := f0 + (f1-f0)*t
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += f / sampleRate
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// envelope applies a linear attack and release in place and returns
// the buffer.
func envelope(buf []float64, attackSec, releaseSec float64) []float64 {
	attack := int(attackSec * sampleRate)
	release := int(releaseSec * sampleRate)
	for i := 0; i < attack && i < len(buf); i++ {
		buf[i] *= float64(i) / float64(attack)
	}
	start := len(buf) - release
	if start < 0 {
		start = 0
	}
	for i := start; i < len(buf); i++ {
		buf[i] *= float64(len(buf)-i) / float64(release)
	}
	return buf
}

// fanfare is the game-over jingle: three descending-then-rising sine
// notes.
func fanfare() []float64 {
	var out []float64
	for _, f := range []float64{523.25, 392.00, 659.25} {
		out = append(out, envelope(tone(waveSine, f, 0.16), 0.01, 0.06)...)
	}
	return out
}

// toPCM packs a mono float buffer into 16-bit little-endian stereo at
// the given gain.
func toPCM(buf []float64, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		s := int16(clampUnit(v*gain) * math.MaxInt16)
		lo, hi := byte(s), byte(s>>8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
