package gpa

import (
	"testing"

	"github.com/campustools/gradepoint/internal/app/models"
)

func TestDefaultScale_Points(t *testing.T) {
	tests := []struct {
		grade models.GradeSymbol
		want  float64
	}{
		{models.GradeAPlus, 4.0},
		{models.GradeA, 4.0},
		{models.GradeAMinus, 3.7},
		{models.GradeBPlus, 3.3},
		{models.GradeB, 3.0},
		{models.GradeBMinus, 2.7},
		{models.GradeCPlus, 2.3},
		{models.GradeC, 2.0},
		{models.GradeCMinus, 1.7},
		{models.GradeDPlus, 1.3},
		{models.GradeD, 1.0},
		{models.GradeF, 0.0},
	}

	for _, tt := range tests {
		if got := DefaultScale.Points(tt.grade); got != tt.want {
			t.Errorf("Points(%q) = %v, want %v", tt.grade, got, tt.want)
		}
	}
}

func TestDefaultScale_UnknownSymbolIsZero(t *testing.T) {
	for _, unknown := range []models.GradeSymbol{"E", "a", "A +", "", "PASS"} {
		if got := DefaultScale.Points(unknown); got != 0 {
			t.Errorf("Points(%q) = %v, want 0", unknown, got)
		}
	}
}

func TestSymbols_CoverScale(t *testing.T) {
	if len(Symbols) != len(DefaultScale) {
		t.Fatalf("Symbols has %d entries, scale has %d", len(Symbols), len(DefaultScale))
	}

	seen := make(map[models.GradeSymbol]bool)
	for _, s := range Symbols {
		if seen[s] {
			t.Errorf("symbol %q listed twice", s)
		}
		seen[s] = true
		if _, ok := DefaultScale[s]; !ok {
			t.Errorf("symbol %q missing from scale", s)
		}
	}

	// Best to worst: point values never increase.
	for i := 1; i < len(Symbols); i++ {
		if DefaultScale[Symbols[i]] > DefaultScale[Symbols[i-1]] {
			t.Errorf("symbols out of order: %q (%v) after %q (%v)",
				Symbols[i], DefaultScale[Symbols[i]], Symbols[i-1], DefaultScale[Symbols[i-1]])
		}
	}
}

func TestDefaultScale_ValuesWithinRange(t *testing.T) {
	for grade, points := range DefaultScale {
		if points < 0 || points > 4.0 {
			t.Errorf("Points(%q) = %v, want within [0, 4.0]", grade, points)
		}
	}
}
