// Package loop drives a core.Game from a host: it owns the game, samples the
// input latch once per frame, fires the audio cue and turns UI actions into
// commands applied between frames.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"PongArcade/core"
	"PongArcade/input"
	"PongArcade/logger"
	"PongArcade/sound"
)

const commandBuffer = 16

type CommandKind int

const (
	CommandRestart CommandKind = iota
	CommandDifficulty
	CommandQuit
)

type Command struct {
	Kind       CommandKind
	Difficulty core.Difficulty
}

func (c Command) String() string {
	switch c.Kind {
	case CommandRestart:
		return "restart"
	case CommandDifficulty:
		return "difficulty(" + string(c.Difficulty) + ")"
	case CommandQuit:
		return "quit"
	}
	return fmt.Sprintf("command(%d)", c.Kind)
}

func Restart() Command { return Command{Kind: CommandRestart} }
func Quit() Command { return Command{Kind: CommandQuit} }
func Difficulty(d core.Difficulty) Command { return Command{Kind: CommandDifficulty, Difficulty: d} }

// Session is advanced by exactly one goroutine through Tick or Run. Submit
// and the latch are the only parts other goroutines may touch.
type Session struct {
	ID string

	game     *core.Game
	latch    *input.Latch
	cue      sound.Cue
	commands chan Command
	running  bool
}

func NewSession(game *core.Game, latch *input.Latch, cue sound.Cue) *Session {
	if cue == nil {
		cue = sound.Silent{}
	}
	return &Session{
		ID:       uuid.NewString(),
		game:     game,
		latch:    latch,
		cue:      cue,
		commands: make(chan Command, commandBuffer),
		running:  true,
	}
}

func (s *Session) Game() *core.Game { return s.game }
func (s *Session) Latch() *input.Latch { return s.latch }
func (s *Session) Running() bool { return s.running }
func (s *Session) Snapshot() string { return core.GenerateSnapshotPayload(s.game) }

// Submit queues cmd for the next frame without blocking.
func (s *Session) Submit(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		logger.Log.Warn(fmt.Sprintf(logger.CommandDroppedMsg, cmd))
		return false
	}
}

// Tick runs one frame. It reports false once the session has quit.
func (s *Session) Tick() bool {
	if !s.running {
		return false
	}
	if !s.drainCommands() {
		return false
	}

	ev := s.game.Step(s.latch.Sample())
	if ev.Any() {
		s.cue.Play()
	}
	if ev.Scored != core.SideNone {
		sc := s.game.Score()
		logger.Log.Info(fmt.Sprintf(logger.ScoreMsg, ev.Scored, sc.Left, sc.Right, s.Snapshot()))
	}
	return true
}

func (s *Session) drainCommands() bool {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
			if !s.running {
				return false
			}
		default:
			return true
		}
	}
}

func (s *Session) apply(cmd Command) {
	switch cmd.Kind {
	case CommandRestart:
		s.game.Restart()
		logger.Log.Info(fmt.Sprintf(logger.RestartMsg, s.game.Frame()))

	case CommandDifficulty:
		prev := s.game.Difficulty()
		if s.game.Rules().Variant != core.VariantDifficulty || prev == cmd.Difficulty {
			return
		}
		if err := s.game.SetDifficulty(cmd.Difficulty); err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.DifficultyRejectedMsg, cmd.Difficulty, err))
			return
		}
		logger.Log.Info(fmt.Sprintf(logger.DifficultyChangeMsg, prev, cmd.Difficulty))

	case CommandQuit:
		s.running = false
	}
}

// Run ticks at fps until ctx is done or a Quit command arrives. afterTick, if
// set, is called after every frame, typically to render it.
func (s *Session) Run(ctx context.Context, fps int, afterTick func()) error {
	if fps <= 0 {
		return fmt.Errorf("invalid frame rate %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.Tick() {
				return nil
			}
			if afterTick != nil {
				afterTick()
			}
		}
	}
}

// Stop logs the end of the session.
func (s *Session) Stop() {
	sc := s.game.Score()
	logger.Log.Info(fmt.Sprintf(logger.SessionStopMsg, s.ID, s.game.Frame(), sc.Left, sc.Right))
}

// Start logs the beginning of the session and tags later log lines with its id.
func (s *Session) Start(fps int) {
	logger.Log.SetField("session", s.ID)
	r := s.game.Rules()
	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg, s.ID, r.Variant, r.Difficulty, fps))
}
