// Package terminal plays the game in a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell"

	"PongArcade/core"
	"PongArcade/logger"
	"PongArcade/loop"
)

// KeyHold is how long an arrow key stays held after its last press. Terminals
// send repeats while a key is down and nothing when it comes up.
const KeyHold = 150 * time.Millisecond

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return screen, nil
}

// Run opens the user's terminal and plays until quit or ctx is cancelled.
func Run(ctx context.Context, s *loop.Session, fps int) error {
	screen, err := initScreen()
	if err != nil {
		return err
	}
	return RunOn(ctx, screen, s, fps)
}

// RunOn plays on an uninitialized screen, which lets tests pass a simulation screen.
func RunOn(ctx context.Context, screen tcell.Screen, s *loop.Session, fps int) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	logger.Log.Info(fmt.Sprintf(logger.HostStartMsg, core.HostTerminal))

	view := NewView(screen)
	view.Draw(s.Game())

	//建立一個goroutine去監聽鍵盤的事件
	go pollEvents(screen, s)

	return s.Run(ctx, fps, func() { view.Draw(s.Game()) })
}

// pollEvents exits once the screen is finalized and PollEvent returns nil.
func pollEvents(screen tcell.Screen, s *loop.Session) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			handleKey(ev, s)
		}
	}
}

func handleKey(ev *tcell.EventKey, s *loop.Session) {
	latch := s.Latch()
	switch ev.Key() {
	case tcell.KeyUp:
		latch.Release(core.KeyDown)
		latch.Press(core.KeyUp)
	case tcell.KeyDown:
		latch.Release(core.KeyUp)
		latch.Press(core.KeyDown)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.Submit(loop.Quit())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			s.Submit(loop.Quit())
		case 'r', 'R':
			s.Submit(loop.Restart())
		case '1':
			s.Submit(loop.Difficulty(core.DifficultyEasy))
		case '2':
			s.Submit(loop.Difficulty(core.DifficultyMedium))
		case '3':
			s.Submit(loop.Difficulty(core.DifficultyHard))
		}
	}
}
