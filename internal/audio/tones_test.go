package audio

import (
	"testing"
	"time"
)

func TestSweepDuration(t *testing.T) {
	d := 100 * time.Millisecond
	s := newSweep(440, 880, d, waveSine)

	expected := sampleRate.N(d)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if total != expected {
		t.Errorf("sweep produced %d samples, expected %d", total, expected)
	}
}

func TestSweepAmplitudeBounded(t *testing.T) {
	for _, wave := range []waveType{waveSine, waveSquare, waveSaw} {
		s := newSweep(220, 1320, 50*time.Millisecond, wave)
		buf := make([][2]float64, 256)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				for ch := 0; ch < 2; ch++ {
					if v := buf[i][ch]; v < -1.0 || v > 1.0 {
						t.Fatalf("wave %d sample out of range: %f", wave, v)
					}
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestSweepDrainedStreamStops(t *testing.T) {
	s := newSweep(440, 440, time.Millisecond, waveSine)
	buf := make([][2]float64, sampleRate.N(10*time.Millisecond))

	s.Stream(buf)
	n, ok := s.Stream(buf)
	if n != 0 || ok {
		t.Errorf("drained stream returned n=%d ok=%v, expected 0 false", n, ok)
	}
	if s.(*sweep).Err() != nil {
		t.Errorf("sweep should never error")
	}
}

func TestTonePerSound(t *testing.T) {
	for _, id := range []SoundID{SoundJump, SoundCoin, SoundDeath} {
		if tone(id) == nil {
			t.Errorf("tone(%s) returned nil", id)
		}
	}
}

func TestNopPlayer(t *testing.T) {
	// Must not panic and must not require any backend.
	var p Player = Nop{}
	p.Play(SoundJump)
	p.Play(SoundCoin)
	p.Play(SoundDeath)
}

func TestManagerPlayBeforeInit(t *testing.T) {
	// Play without Initialize must be a silent no-op.
	m := NewManager()
	m.Play(SoundJump)
	m.Cleanup()
}
