package core

const KeyUp = "ArrowUp"
const KeyDown = "ArrowDown"

// Random is the subset of *rand.Rand the game draws from.
type Random interface {
	Float64() float64
}

// Input is the latch sampled once per frame.
type Input struct {
	Up   bool
	Down bool
}

type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Events is what happened during one Step.
type Events struct {
	WallBounce bool
	PaddleHit  bool
	Scored     Side
}

// Any reports whether the frame should play the cue.
func (e Events) Any() bool {
	return e.WallBounce || e.PaddleHit || e.Scored != SideNone
}

// Game owns every piece of mutable play state. It is not safe for concurrent use;
// the host advances it from a single goroutine.
type Game struct {
	state State
	score Score
	rules Rules
	rnd   Random
	frame uint64
}

func NewGame(rules Rules, rnd Random) *Game {
	return &Game{
		state: NewState(),
		rules: rules,
		rnd:   rnd,
	}
}

func (g *Game) State() State { return g.state }
func (g *Game) Score() Score { return g.score }
func (g *Game) Rules() Rules { return g.rules }
func (g *Game) Difficulty() Difficulty { return g.rules.Difficulty }
func (g *Game) Frame() uint64 { return g.frame }

// SetState replaces the positions; scores are left alone.
func (g *Game) SetState(s State) {
	g.state = s
}

// Restart zeroes both scores without touching the ball or paddles.
func (g *Game) Restart() {
	g.score = Score{}
}

// Reset puts paddles and ball back to their starting positions.
func (g *Game) Reset() {
	g.state = NewState()
}

// SetDifficulty swaps the AI tuning and reinitializes positions. Scores carry
// over. The classic variant has no difficulty so the call is ignored there.
func (g *Game) SetDifficulty(d Difficulty) error {
	if g.rules.Variant != VariantDifficulty {
		return nil
	}
	rules, err := DifficultyRules(d)
	if err != nil {
		return err
	}
	g.rules = rules
	g.Reset()
	return nil
}

// Step advances the simulation by one fixed frame.
func (g *Game) Step(in Input) Events {
	var ev Events
	g.frame++

	moveAIPaddle(&g.state, g.rules, g.rnd)
	moveHumanPaddle(&g.state.Right, g.rules.HumanSpeed, in)

	ball := &g.state.Ball
	ball.X += ball.VX
	ball.Y += ball.VY

	//檢查有沒有撞到上下牆壁
	if isCollidesWithWall(ball) {
		ball.VY = -ball.VY
		ev.WallBounce = true
	}

	//檢查是否有碰到球拍
	if isTouchLeftPaddle(ball, &g.state.Left) {
		ball.VX = -ball.VX
		ev.PaddleHit = true
	}
	if isTouchRightPaddle(ball, &g.state.Right) {
		ball.VX = -ball.VX
		ev.PaddleHit = true
	}

	if ball.X < 0 {
		g.calculateScore(SideRight)
		ev.Scored = SideRight
	}
	if ball.X > FieldWidth {
		g.calculateScore(SideLeft)
		ev.Scored = SideLeft
	}
	return ev
}

func (g *Game) calculateScore(scorer Side) {
	switch scorer {
	case SideLeft:
		g.score.Left += 1
	case SideRight:
		g.score.Right += 1
	}
	resetNewRound(&g.state.Ball, g.rnd)
}

func resetNewRound(ball *Ball, rnd Random) {
	ball.X = FieldWidth / 2
	ball.Y = FieldHeight / 2
	ball.VX = -ball.VX
	if rnd.Float64() > 0.5 {
		ball.VY = BallVelocityY
	} else {
		ball.VY = -BallVelocityY
	}
}

func moveHumanPaddle(p *Paddle, speed float64, in Input) {
	if in.Up {
		p.MoveUp(speed)
	}
	if in.Down {
		p.MoveDown(speed)
	}
	p.clamp()
}

func isCollidesWithWall(ball *Ball) bool {
	return ball.Y-ball.Radius < 0 || ball.Y+ball.Radius > FieldHeight
}

func isTouchLeftPaddle(ball *Ball, p *Paddle) bool {
	return ball.X-ball.Radius < PaddleFace && p.Covers(ball.Y)
}

func isTouchRightPaddle(ball *Ball, p *Paddle) bool {
	return ball.X+ball.Radius > FieldWidth-PaddleFace && p.Covers(ball.Y)
}
