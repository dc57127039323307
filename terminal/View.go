package terminal

import (
	"strconv"

	"github.com/gdamore/tcell"

	"PongArcade/core"
	"PongArcade/render"
)

const helpText = "↑/↓ move  r restart  1/2/3 difficulty  q quit"

type View struct {
	screen  tcell.Screen
	surface *Surface
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen, surface: NewSurface(screen)}
}

func (v *View) Draw(g *core.Game) {
	render.Draw(v.surface, g)

	width, height := v.screen.Size()
	style := tcell.StyleDefault.Background(v.surface.bg).Foreground(tcell.ColorGray)

	//中線
	for row := 0; row < height; row++ {
		v.putIfEmpty(width/2, row, MidlineSymbol, style)
	}

	//分數更新
	sc := g.Score()
	score := style.Foreground(tcell.ColorWhite)
	v.drawLetters(width/4, 1, strconv.Itoa(sc.Left), score)
	v.drawLetters((width/4)*3, 1, strconv.Itoa(sc.Right), score)

	label := string(g.Rules().Variant)
	if d := g.Difficulty(); d != core.DifficultyNone {
		label += ": " + string(d)
	}
	v.drawText(1, height-1, label, style)
	v.drawText(width-len([]rune(helpText))-1, height-1, helpText, style)

	v.screen.Show()
}

func (v *View) putIfEmpty(col, row int, ch rune, style tcell.Style) {
	if cur, _, _, _ := v.screen.GetContent(col, row); cur != ' ' && cur != 0 {
		return
	}
	v.screen.SetContent(col, row, ch, nil, style)
}

// drawLetters centers word on column x with its top row at y.
func (v *View) drawLetters(x, y int, word string, style tcell.Style) {
	letters := []rune(word)
	totalLen := len(letters)*letterWidth + (len(letters)-1)*letterGap
	startX := x - totalLen/2

	for i, letter := range letters {
		offsetX := startX + i*(letterWidth+letterGap)
		for _, cell := range getCellsFromChar(letter) {
			v.putIfEmpty(offsetX+cell[0], y+cell[1], PaddleSymbol, style)
		}
	}
}

func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		v.putIfEmpty(x+i, y, ch, style)
	}
}
