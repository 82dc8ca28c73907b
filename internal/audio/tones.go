package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveType defines oscillator wave shapes.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
)

// sweep generates a frequency sweep with a linear fade-out envelope.
// It is a one-shot streamer: Stream reports done when the duration elapses.
type sweep struct {
	from, to float64 // Frequency endpoints in Hz
	phase    float64
	duration int // Total samples
	position int
	wave     waveType
	rate     beep.SampleRate
}

// newSweep creates a sweep from one frequency to another over the given
// duration.
func newSweep(from, to float64, d time.Duration, wave waveType) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: sampleRate.N(d),
		wave:     wave,
		rate:     sampleRate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		// Fade out over the full duration to avoid clicks.
		progress := float64(o.position) / float64(o.duration)
		val *= 0.4 * (1.0 - progress)

		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// tone returns the one-shot streamer for a sound effect.
func tone(id SoundID) beep.Streamer {
	switch id {
	case SoundJump:
		return newSweep(280, 640, 120*time.Millisecond, waveSquare)
	case SoundCoin:
		return newSweep(880, 1320, 90*time.Millisecond, waveSine)
	case SoundDeath:
		return newSweep(220, 55, 350*time.Millisecond, waveSaw)
	default:
		return newSweep(440, 440, 100*time.Millisecond, waveSine)
	}
}
