package core

import "testing"

func TestClassicAITracksBall(t *testing.T) {
	tests := []struct {
		name  string
		ballY float64
		want  float64
	}{
		{"ball below band", 300, 213},
		{"ball above band", 150, 207},
		{"ball inside band", 258, 210},
		{"ball on band edge", 260, 210},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Ball.Y = tt.ballY
			moveAIPaddle(&s, ClassicRules(), fixedRandom(0.9))
			if s.Left.Y != tt.want {
				t.Fatalf("left paddle at %v, want %v", s.Left.Y, tt.want)
			}
		})
	}
}

func TestClassicAIHasNoEngageGate(t *testing.T) {
	s := NewState()
	s.Ball.X = 780
	s.Ball.Y = 400
	moveAIPaddle(&s, ClassicRules(), fixedRandom(0.0))
	if s.Left.Y != 213 {
		t.Fatalf("classic AI should always track, paddle at %v", s.Left.Y)
	}
}

func TestDifficultyAISpeedAndBand(t *testing.T) {
	tests := []struct {
		d     Difficulty
		ballY float64
		want  float64
	}{
		{DifficultyEasy, 400, 212},
		{DifficultyEasy, 270, 210}, // inside the 25px band
		{DifficultyMedium, 400, 213},
		{DifficultyMedium, 264, 210},
		{DifficultyHard, 400, 215},
		{DifficultyHard, 256, 215},
		{DifficultyHard, 100, 205},
	}
	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			s := NewState()
			s.Ball.X = 350
			s.Ball.Y = tt.ballY
			moveAIPaddle(&s, mustRules(t, tt.d), fixedRandom(0.9))
			if s.Left.Y != tt.want {
				t.Fatalf("ballY=%v: left paddle at %v, want %v", tt.ballY, s.Left.Y, tt.want)
			}
		})
	}
}

func TestDifficultyAIIdlesOutsideGate(t *testing.T) {
	tests := []struct {
		name string
		rnd  []float64
		want float64
	}{
		{"no wiggle", []float64{0.5}, 210},
		{"wiggle down", []float64{0.01, 1.0}, 214},
		{"wiggle up", []float64{0.01, 0.0}, 206},
		{"wiggle small", []float64{0.01, 0.75}, 212},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.Ball.X = 100
			s.Ball.Y = 480
			moveAIPaddle(&s, mustRules(t, DifficultyHard), &scriptedRandom{vals: tt.rnd})
			if s.Left.Y != tt.want {
				t.Fatalf("left paddle at %v, want %v", s.Left.Y, tt.want)
			}
		})
	}
}

func TestDifficultyGateIsExclusive(t *testing.T) {
	s := NewState()
	s.Ball.X = 600 // exactly 200 from the center
	s.Ball.Y = 480
	moveAIPaddle(&s, mustRules(t, DifficultyHard), fixedRandom(0.5))
	if s.Left.Y != 210 {
		t.Fatalf("ball on the gate edge should not engage, paddle at %v", s.Left.Y)
	}
}

func TestAIPaddleIsNotClamped(t *testing.T) {
	s := NewState()
	s.Left.Y = 0
	s.Ball.Y = 5
	moveAIPaddle(&s, ClassicRules(), fixedRandom(0.9))
	if s.Left.Y != -3 {
		t.Fatalf("AI paddle should be allowed past the top edge, got %v", s.Left.Y)
	}
}
