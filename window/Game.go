// Package window plays the game in a desktop window through ebiten.
package window

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"PongArcade/core"
	"PongArcade/logger"
	"PongArcade/loop"
	"PongArcade/render"
)

const Title = "Pong Game"

const helpText = "Up/Down move   R restart   1/2/3 difficulty   C copy frame   Esc quit"

var difficultyKeys = map[ebiten.Key]core.Difficulty{
	ebiten.Key1: core.DifficultyEasy,
	ebiten.Key2: core.DifficultyMedium,
	ebiten.Key3: core.DifficultyHard,
}

// Game adapts a loop.Session to ebiten's Update/Draw/Layout cycle. ebiten
// calls Update at the configured TPS, which is the fixed simulation step.
type Game struct {
	session *loop.Session
}

func NewGame(s *loop.Session) *Game {
	return &Game{session: s}
}

func (g *Game) Update() error {
	g.handleInput()
	if !g.session.Tick() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) handleInput() {
	latch := g.session.Latch()
	latch.Set(core.KeyUp, ebiten.IsKeyPressed(ebiten.KeyArrowUp))
	latch.Set(core.KeyDown, ebiten.IsKeyPressed(ebiten.KeyArrowDown))

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Submit(loop.Restart())
	}
	for key, d := range difficultyKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Submit(loop.Difficulty(d))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.session.Snapshot()); err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.ClipboardFailedMsg, err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Submit(loop.Quit())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	game := g.session.Game()
	render.Draw(Surface{img: screen}, game)

	sc := game.Score()
	board := fmt.Sprintf("AI %d     YOU %d", sc.Left, sc.Right)
	x := core.FieldWidth/2 - len(board)*basicfont.Face7x13.Advance/2
	text.Draw(screen, board, basicfont.Face7x13, x, 24, color.White)

	label := string(game.Rules().Variant)
	if d := game.Difficulty(); d != core.DifficultyNone {
		label += ": " + string(d)
	}
	ebitenutil.DebugPrintAt(screen, label, 8, 8)
	ebitenutil.DebugPrintAt(screen, helpText, 8, core.FieldHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.FieldWidth, core.FieldHeight
}

// Run opens the window and blocks until it is closed or the session quits.
func Run(s *loop.Session, fps int) error {
	logger.Log.Info(fmt.Sprintf(logger.HostStartMsg, core.HostWindow))

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(core.FieldWidth, core.FieldHeight)
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(NewGame(s)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
