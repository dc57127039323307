package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws onto an ebiten image laid out at field size, so field units
// are pixels.
type Surface struct {
	img *ebiten.Image
}

func (s Surface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.FillCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}
