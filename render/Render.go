// Package render draws a game frame onto any surface that offers the three
// canvas primitives. Coordinates are field units (800x500).
package render

import (
	"image/color"

	"PongArcade/core"
)

type Surface interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

var Background = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff} // #0f172a
var Foreground = color.White

// Draw paints the latest positions. Scores are left to the host since each
// one has its own way of putting text on screen.
func Draw(s Surface, g *core.Game) {
	st := g.State()
	s.Clear(Background)

	//兩個球拍
	for _, p := range []core.Paddle{st.Left, st.Right} {
		s.FillRect(p.X, p.Y, p.Width, p.Height, Foreground)
	}
	//球
	s.FillCircle(st.Ball.X, st.Ball.Y, st.Ball.Radius, Foreground)
}
