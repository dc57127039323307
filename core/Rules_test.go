package core

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
		err  bool
	}{
		{"easy", DifficultyEasy, false},
		{" Medium ", DifficultyMedium, false},
		{"HARD", DifficultyHard, false},
		{"", DifficultyNone, true},
		{"nightmare", DifficultyNone, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.err {
			if !errors.Is(err, ErrUnknownDifficulty) {
				t.Errorf("ParseDifficulty(%q) err = %v, want ErrUnknownDifficulty", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestRulesFor(t *testing.T) {
	r, err := RulesFor(VariantClassic, DifficultyHard)
	if err != nil {
		t.Fatalf("RulesFor classic: %v", err)
	}
	if r != ClassicRules() {
		t.Fatalf("classic rules should ignore difficulty, got %+v", r)
	}

	r, err = RulesFor(VariantDifficulty, DifficultyEasy)
	if err != nil {
		t.Fatalf("RulesFor difficulty: %v", err)
	}
	if r.AISpeed != 2 || r.AIDeadband != 25 || r.HumanSpeed != 6 || r.EngageRange != 200 || r.JitterOdds != 0.02 {
		t.Fatalf("unexpected easy rules %+v", r)
	}

	if _, err := RulesFor("arcade", DifficultyEasy); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("want ErrUnknownVariant, got %v", err)
	}
	if _, err := RulesFor(VariantDifficulty, DifficultyNone); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("want ErrUnknownDifficulty, got %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	if v, err := ParseVariant("Classic"); err != nil || v != VariantClassic {
		t.Fatalf("ParseVariant(Classic) = %q, %v", v, err)
	}
	if _, err := ParseVariant("co-op"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("want ErrUnknownVariant, got %v", err)
	}
}
