// Package sound holds the fire-and-forget audio cue played on bounces and scores.
package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// Cue plays a short sound. Implementations must not block the frame and must
// swallow playback failures.
type Cue interface {
	Play()
}

type Silent struct{}

func (Silent) Play() {}

// CueFunc adapts a plain function to Cue.
type CueFunc func()

func (f CueFunc) Play() { f() }

const SampleRate = 44100

const BeepFrequency = 880
const BeepDuration = 60 * time.Millisecond
const BeepVolume = 0.3

// Beep renders a sine tone as 16-bit little-endian stereo PCM with a linear
// fade-out so the cut does not click.
func Beep(sampleRate int, freq float64, d time.Duration, volume float64) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * fade
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
