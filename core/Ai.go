package core

import "math"

// moveAIPaddle is a proportional tracker with a deadband around the paddle
// center. The left paddle is never clamped to the field; a ball hugging a
// wall can walk it off screen. Known limitation.
func moveAIPaddle(s *State, r Rules, rnd Random) {
	p := &s.Left
	ballY := s.Ball.Y

	if r.EngageRange > 0 && math.Abs(s.Ball.X-FieldWidth/2) >= r.EngageRange {
		idleWiggle(p, r, rnd)
		return
	}

	center := p.Center()
	if ballY < center-r.AIDeadband {
		p.MoveUp(r.AISpeed)
	} else if ballY > center+r.AIDeadband {
		p.MoveDown(r.AISpeed)
	}
}

func idleWiggle(p *Paddle, r Rules, rnd Random) {
	if r.JitterOdds <= 0 || rnd.Float64() >= r.JitterOdds {
		return
	}
	p.Y += (rnd.Float64()*2 - 1) * r.JitterReach
}
