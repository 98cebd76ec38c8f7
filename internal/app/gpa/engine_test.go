package gpa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/campustools/gradepoint/internal/app/models"
)

// almostEqual returns true if a and b are within epsilon of each other.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func row(credits string, grade models.GradeSymbol) models.CourseRow {
	return models.CourseRow{ID: "r-" + credits + string(grade), Credits: credits, Grade: grade}
}

// --- ParseCredits -----------------------------------------------------------

func TestParseCredits(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		counted bool
	}{
		{name: "integer", raw: "3", want: 3, counted: true},
		{name: "fractional", raw: "1.5", want: 1.5, counted: true},
		{name: "surrounding whitespace", raw: " 4 ", want: 4, counted: true},
		{name: "zero excluded", raw: "0", counted: false},
		{name: "negative excluded", raw: "-1", counted: false},
		{name: "empty excluded", raw: "", counted: false},
		{name: "garbage excluded", raw: "three", counted: false},
		{name: "infinity excluded", raw: "Inf", counted: false},
		{name: "NaN excluded", raw: "NaN", counted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, counted := ParseCredits(tt.raw)
			if counted != tt.counted {
				t.Fatalf("ParseCredits(%q) counted = %v, want %v", tt.raw, counted, tt.counted)
			}
			if counted && !almostEqual(got, tt.want) {
				t.Errorf("ParseCredits(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// --- ComputeSummary ---------------------------------------------------------

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name              string
		rows              []models.CourseRow
		wantGPA           float64
		wantTotalCredits  float64
		wantQualityPoints float64
	}{
		{
			name: "empty sequence",
			rows: nil,
		},
		{
			name: "two counted rows",
			// 3×4.0 + 4×3.0 = 24 quality points over 7 credits
			rows:              []models.CourseRow{row("3", models.GradeA), row("4", models.GradeB)},
			wantGPA:           24.0 / 7.0,
			wantTotalCredits:  7,
			wantQualityPoints: 24,
		},
		{
			name:              "negative-credit row excluded",
			rows:              []models.CourseRow{row("3", models.GradeA), row("-1", models.GradeA)},
			wantGPA:           4.0,
			wantTotalCredits:  3,
			wantQualityPoints: 12,
		},
		{
			name: "all rows invalid",
			rows: []models.CourseRow{row("0", models.GradeA), row("abc", models.GradeB), row("-2", models.GradeC)},
		},
		{
			name:              "unknown grade counts credits at zero points",
			rows:              []models.CourseRow{row("3", models.GradeSymbol("Z"))},
			wantGPA:           0,
			wantTotalCredits:  3,
			wantQualityPoints: 0,
		},
		{
			name:              "unknown grade mixed with counted row",
			rows:              []models.CourseRow{row("3", models.GradeSymbol("Z")), row("3", models.GradeA)},
			wantGPA:           12.0 / 6.0,
			wantTotalCredits:  6,
			wantQualityPoints: 12,
		},
		{
			name:              "fractional credits",
			rows:              []models.CourseRow{row("1.5", models.GradeBPlus), row("2.5", models.GradeAMinus)},
			wantGPA:           (1.5*3.3 + 2.5*3.7) / 4.0,
			wantTotalCredits:  4,
			wantQualityPoints: 1.5*3.3 + 2.5*3.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSummary(tt.rows, DefaultScale)
			if !almostEqual(got.GPA, tt.wantGPA) {
				t.Errorf("GPA = %v, want %v", got.GPA, tt.wantGPA)
			}
			if !almostEqual(got.TotalCredits, tt.wantTotalCredits) {
				t.Errorf("TotalCredits = %v, want %v", got.TotalCredits, tt.wantTotalCredits)
			}
			if !almostEqual(got.QualityPoints, tt.wantQualityPoints) {
				t.Errorf("QualityPoints = %v, want %v", got.QualityPoints, tt.wantQualityPoints)
			}
		})
	}
}

func TestComputeSummary_GPAIdentity(t *testing.T) {
	rows := []models.CourseRow{
		row("3", models.GradeA),
		row("4", models.GradeBMinus),
		row("2", models.GradeCPlus),
		row("1.5", models.GradeF),
	}

	got := ComputeSummary(rows, DefaultScale)
	if got.TotalCredits == 0 {
		t.Fatal("expected counted rows")
	}
	if !almostEqual(got.GPA, got.QualityPoints/got.TotalCredits) {
		t.Errorf("GPA = %v, want qualityPoints/totalCredits = %v", got.GPA, got.QualityPoints/got.TotalCredits)
	}
	if got.GPA < 0 || got.GPA > 4.0 {
		t.Errorf("GPA = %v, want within [0, 4.0]", got.GPA)
	}
}

func TestComputeSummary_OrderIndependent(t *testing.T) {
	rows := []models.CourseRow{
		row("3", models.GradeA),
		row("4", models.GradeB),
		row("bad", models.GradeA),
		row("2", models.GradeDPlus),
		row("1", models.GradeF),
	}
	want := ComputeSummary(rows, DefaultScale)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.CourseRow, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := ComputeSummary(shuffled, DefaultScale)
		if !almostEqual(got.GPA, want.GPA) ||
			!almostEqual(got.TotalCredits, want.TotalCredits) ||
			!almostEqual(got.QualityPoints, want.QualityPoints) {
			t.Fatalf("permutation %d changed result: got %+v, want %+v", i, got, want)
		}
	}
}

// --- FormatGPA --------------------------------------------------------------

func TestFormatGPA(t *testing.T) {
	tests := []struct {
		gpa       float64
		precision int
		want      string
	}{
		{gpa: 24.0 / 7.0, precision: 2, want: "3.43"},
		{gpa: 24.0 / 7.0, precision: 3, want: "3.429"},
		{gpa: 0, precision: 2, want: "0.00"},
		{gpa: 4, precision: 2, want: "4.00"},
		{gpa: 3.5, precision: 0, want: "4"},
		{gpa: 3.5, precision: -1, want: "4"}, // clamped to 0
	}

	for _, tt := range tests {
		if got := FormatGPA(tt.gpa, tt.precision); got != tt.want {
			t.Errorf("FormatGPA(%v, %d) = %q, want %q", tt.gpa, tt.precision, got, tt.want)
		}
	}
}
