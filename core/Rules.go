package core

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")
var ErrUnknownVariant = errors.New("unknown variant")

type Difficulty string

const (
	DifficultyNone   Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return DifficultyNone, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

type Variant string

const (
	VariantClassic    Variant = "classic"
	VariantDifficulty Variant = "difficulty"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantClassic, VariantDifficulty:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Rules holds every per-frame tuning constant of one game variant.
type Rules struct {
	Variant    Variant
	Difficulty Difficulty

	AISpeed    float64
	AIDeadband float64

	// EngageRange > 0 limits AI tracking to frames where the ball is within
	// that horizontal distance of the field center.
	EngageRange float64
	JitterOdds  float64
	JitterReach float64

	HumanSpeed float64
}

func ClassicRules() Rules {
	return Rules{
		Variant:    VariantClassic,
		AISpeed:    3,
		AIDeadband: 10,
		HumanSpeed: 5,
	}
}

func DifficultyRules(d Difficulty) (Rules, error) {
	r := Rules{
		Variant:     VariantDifficulty,
		Difficulty:  d,
		EngageRange: 200,
		JitterOdds:  0.02,
		JitterReach: 4,
		HumanSpeed:  6,
	}
	switch d {
	case DifficultyEasy:
		r.AISpeed, r.AIDeadband = 2, 25
	case DifficultyMedium:
		r.AISpeed, r.AIDeadband = 3, 15
	case DifficultyHard:
		r.AISpeed, r.AIDeadband = 5, 5
	default:
		return Rules{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return r, nil
}

// RulesFor resolves a variant and, for the difficulty variant, its level.
func RulesFor(v Variant, d Difficulty) (Rules, error) {
	switch v {
	case VariantClassic:
		return ClassicRules(), nil
	case VariantDifficulty:
		return DifficultyRules(d)
	}
	return Rules{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
}
