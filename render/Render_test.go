package render

import (
	"image/color"
	"testing"

	"PongArcade/core"
)

type call struct {
	op         string
	x, y, w, h float64
}

type recorder struct {
	calls []call
}

func (r *recorder) Clear(c color.Color) {
	r.calls = append(r.calls, call{op: "clear"})
}

func (r *recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.calls = append(r.calls, call{op: "rect", x: x, y: y, w: w, h: h})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.calls = append(r.calls, call{op: "circle", x: cx, y: cy, w: rad})
}

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestDrawOrderAndGeometry(t *testing.T) {
	g := core.NewGame(core.ClassicRules(), fixed(0.9))
	var r recorder
	Draw(&r, g)

	want := []call{
		{op: "clear"},
		{op: "rect", x: 20, y: 210, w: 10, h: 80},
		{op: "rect", x: 770, y: 210, w: 10, h: 80},
		{op: "circle", x: 400, y: 250, w: 8},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("got %d calls, want %d: %+v", len(r.calls), len(want), r.calls)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, r.calls[i], want[i])
		}
	}
}

func TestDrawUsesLatestPositions(t *testing.T) {
	g := core.NewGame(core.ClassicRules(), fixed(0.9))
	g.Step(core.Input{Down: true})
	var r recorder
	Draw(&r, g)

	if got := r.calls[2].y; got != 215 {
		t.Fatalf("right paddle drawn at %v, want 215", got)
	}
	if c := r.calls[3]; c.x != 404 || c.y != 254 {
		t.Fatalf("ball drawn at (%v,%v), want (404,254)", c.x, c.y)
	}
}
