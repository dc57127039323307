package core

const FieldWidth = 800  // 場地寬
const FieldHeight = 500 // 場地高

const PaddleHeight = 80 // 球拍高度
const PaddleWidth = 10  // 球拍寬度
const PaddleInset = 20  // 球拍與場地邊緣的距離
const PaddleFace = PaddleInset + PaddleWidth

const BallRadius = 8
const BallVelocityX = 4
const BallVelocityY = 4

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

type Paddle struct {
	Y      float64 // top edge
	X      float64
	Width  float64
	Height float64
}

func (p *Paddle) Center() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) MoveUp(speed float64) {
	p.Y -= speed
}

func (p *Paddle) MoveDown(speed float64) {
	p.Y += speed
}

// Covers reports whether y lies strictly inside the paddle's vertical span.
func (p *Paddle) Covers(y float64) bool {
	return y > p.Y && y < p.Y+p.Height
}

func (p *Paddle) clamp() {
	if p.Y < 0 {
		p.Y = 0
	}
	if bottom := FieldHeight - p.Height; p.Y > bottom {
		p.Y = bottom
	}
}

// State is one frame of positions. It is a plain value so tests can build it directly.
type State struct {
	Left  Paddle // AI
	Right Paddle // human
	Ball  Ball
}

func NewState() State {
	paddleStart := float64(FieldHeight-PaddleHeight) / 2
	return State{
		Left: Paddle{Y: paddleStart, X: PaddleInset,
			Width: PaddleWidth, Height: PaddleHeight},
		Right: Paddle{Y: paddleStart, X: FieldWidth - PaddleFace,
			Width: PaddleWidth, Height: PaddleHeight},
		Ball: Ball{X: FieldWidth / 2, Y: FieldHeight / 2,
			VX: BallVelocityX, VY: BallVelocityY, Radius: BallRadius},
	}
}

type Score struct {
	Left  int
	Right int
}
