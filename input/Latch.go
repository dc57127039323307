// Package input latches key state between asynchronous key events and the
// once-per-frame sampling done by the game loop.
package input

import (
	"sync"
	"time"

	"PongArcade/core"
)

// Latch maps a key name to its held state.
//
// With a zero hold duration a key stays held from Press until Release. With a
// positive hold a key also lapses once hold has passed since its last Press,
// which is how terminals are handled: they repeat key presses but never send
// a release.
type Latch struct {
	mu   sync.RWMutex
	keys map[string]time.Time
	hold time.Duration
	now  func() time.Time
}

func NewLatch(hold time.Duration) *Latch {
	return &Latch{
		keys: make(map[string]time.Time),
		hold: hold,
		now:  time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (l *Latch) SetClock(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}

func (l *Latch) Press(key string) {
	l.mu.Lock()
	l.keys[key] = l.now()
	l.mu.Unlock()
}

func (l *Latch) Release(key string) {
	l.mu.Lock()
	delete(l.keys, key)
	l.mu.Unlock()
}

// Set presses or releases key; convenient for hosts that poll key state.
func (l *Latch) Set(key string, held bool) {
	if held {
		l.Press(key)
		return
	}
	l.Release(key)
}

func (l *Latch) Held(key string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	pressed, ok := l.keys[key]
	if !ok {
		return false
	}
	return l.hold <= 0 || l.now().Sub(pressed) < l.hold
}

// Sample reads the paddle keys for one frame.
func (l *Latch) Sample() core.Input {
	return core.Input{
		Up:   l.Held(core.KeyUp),
		Down: l.Held(core.KeyDown),
	}
}
