package gpa

import (
	"github.com/campustools/gradepoint/internal/app/models"
)

// Scale maps a letter grade to its grade-point value on the 4.0 scale.
// The scale is fixed at startup and never mutated.
type Scale map[models.GradeSymbol]float64

// DefaultScale is the standard 4.0 scale used by the calculator.
var DefaultScale = Scale{
	models.GradeAPlus:  4.0,
	models.GradeA:      4.0,
	models.GradeAMinus: 3.7,
	models.GradeBPlus:  3.3,
	models.GradeB:      3.0,
	models.GradeBMinus: 2.7,
	models.GradeCPlus:  2.3,
	models.GradeC:      2.0,
	models.GradeCMinus: 1.7,
	models.GradeDPlus:  1.3,
	models.GradeD:      1.0,
	models.GradeF:      0.0,
}

// Symbols lists the scale's grades from best to worst. Map iteration order
// is not stable, so display code goes through this instead.
var Symbols = []models.GradeSymbol{
	models.GradeAPlus,
	models.GradeA,
	models.GradeAMinus,
	models.GradeBPlus,
	models.GradeB,
	models.GradeBMinus,
	models.GradeCPlus,
	models.GradeC,
	models.GradeCMinus,
	models.GradeDPlus,
	models.GradeD,
	models.GradeF,
}

// Points returns the grade-point value for the given symbol. Unknown
// symbols are worth 0 points rather than being an error: a row with an
// unrecognized grade still counts its credits, at zero quality points.
func (s Scale) Points(symbol models.GradeSymbol) float64 {
	return s[symbol]
}
