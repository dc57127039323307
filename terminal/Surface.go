package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell"

	"PongArcade/core"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const MidlineSymbol = 0x2590

// Surface maps field units onto the terminal cell grid. A cell is filled when
// its center falls inside the shape; every shape fills at least one cell.
type Surface struct {
	screen tcell.Screen
	bg     tcell.Color
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, bg: tcell.ColorBlack}
}

func (s *Surface) scale() (float64, float64) {
	w, h := s.screen.Size()
	return float64(w) / core.FieldWidth, float64(h) / core.FieldHeight
}

func (s *Surface) Clear(c color.Color) {
	s.bg = toTcell(c)
	style := tcell.StyleDefault.Background(s.bg)
	w, h := s.screen.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	sx, sy := s.scale()
	c0, c1 := span(x*sx, (x+w)*sx)
	r0, r1 := span(y*sy, (y+h)*sy)
	style := s.style(c)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetContent(col, row, PaddleSymbol, nil, style)
		}
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	sx, sy := s.scale()
	style := s.style(c)
	c0, c1 := span((cx-r)*sx, (cx+r)*sx)
	r0, r1 := span((cy-r)*sy, (cy+r)*sy)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			fx := (float64(col) + 0.5) / sx
			fy := (float64(row) + 0.5) / sy
			if math.Hypot(fx-cx, fy-cy) <= r {
				s.screen.SetContent(col, row, BallSymbol, nil, style)
			}
		}
	}
	// the cell under the center is always lit so a small ball never vanishes
	s.screen.SetContent(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), BallSymbol, nil, style)
}

func (s *Surface) style(c color.Color) tcell.Style {
	return tcell.StyleDefault.Background(s.bg).Foreground(toTcell(c))
}

// span converts a [lo, hi) range in cell units to inclusive cell indexes.
func span(lo, hi float64) (int, int) {
	first := int(math.Floor(lo))
	last := int(math.Ceil(hi)) - 1
	if last < first {
		last = first
	}
	return first, last
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
