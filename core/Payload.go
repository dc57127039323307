package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const PayloadTerminator = "~"

const BattleSituationHeader = "BS" // Battle situation 一幀的狀態

var ErrMalformedPayload = errors.New("malformed payload")

// Snapshot is the decoded form of a battle situation payload.
type Snapshot struct {
	BallX, BallY float64
	LeftY        float64
	LeftScore    int
	RightY       float64
	RightScore   int
	Difficulty   Difficulty
}

func SnapshotOf(g *Game) Snapshot {
	s := g.State()
	sc := g.Score()
	return Snapshot{
		BallX: s.Ball.X, BallY: s.Ball.Y,
		LeftY: s.Left.Y, LeftScore: sc.Left,
		RightY: s.Right.Y, RightScore: sc.Right,
		Difficulty: g.Difficulty(),
	}
}

//ballX, ballY, leftY, leftScore, rightY, rightScore, difficulty
func GenerateSnapshotPayload(g *Game) string {
	s := SnapshotOf(g)
	payload := fmt.Sprintf("%.2f,%.2f,%.2f,%d,%.2f,%d,%s", s.BallX, s.BallY,
		s.LeftY, s.LeftScore, s.RightY, s.RightScore, s.Difficulty)
	return BattleSituationHeader + payload + PayloadTerminator
}

func ParseSnapshotPayload(payload string) (Snapshot, error) {
	if !strings.HasPrefix(payload, BattleSituationHeader) || !strings.HasSuffix(payload, PayloadTerminator) ||
		len(payload) < len(BattleSituationHeader)+len(PayloadTerminator) {
		return Snapshot{}, fmt.Errorf("%w: missing header or terminator", ErrMalformedPayload)
	}
	p := strings.Split(removeHeaderTerminator(payload), ",")
	if len(p) != 7 {
		return Snapshot{}, fmt.Errorf("%w: want 7 fields, got %d", ErrMalformedPayload, len(p))
	}

	var s Snapshot
	floats := []*float64{&s.BallX, &s.BallY, &s.LeftY, nil, &s.RightY}
	for i, dst := range floats {
		if dst == nil {
			continue
		}
		v, err := strconv.ParseFloat(p[i], 64)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: field %d: %v", ErrMalformedPayload, i, err)
		}
		*dst = v
	}

	var err error
	if s.LeftScore, err = parseScore(p[3]); err != nil {
		return Snapshot{}, err
	}
	if s.RightScore, err = parseScore(p[5]); err != nil {
		return Snapshot{}, err
	}

	if p[6] != "" {
		if s.Difficulty, err = ParseDifficulty(p[6]); err != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	}
	return s, nil
}

func parseScore(field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad score %q", ErrMalformedPayload, field)
	}
	return n, nil
}

func removeHeaderTerminator(payload string) string {
	return payload[len(BattleSituationHeader) : len(payload)-len(PayloadTerminator)]
}
