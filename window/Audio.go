package window

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"PongArcade/sound"
)

type beepCue struct {
	player *audio.Player
}

// NewCue returns the beep played on bounces and scores. Only one audio
// context may exist per process, so call it once.
func NewCue(enabled bool) sound.Cue {
	if !enabled {
		return sound.Silent{}
	}
	ctx := audio.NewContext(sound.SampleRate)
	pcm := sound.Beep(sound.SampleRate, sound.BeepFrequency, sound.BeepDuration, sound.BeepVolume)
	return &beepCue{player: ctx.NewPlayerFromBytes(pcm)}
}

// Play restarts the beep; a failed seek only costs this one cue.
func (b *beepCue) Play() {
	if err := b.player.SetPosition(0); err != nil {
		return
	}
	b.player.Play()
}
