package gpa

import (
	"math"
	"strconv"
	"strings"

	"github.com/campustools/gradepoint/internal/app/models"
)

// Summary is the aggregate derived from a course table.
type Summary struct {
	// GPA is qualityPoints / totalCredits, or 0 when no row counts.
	GPA float64

	// TotalCredits is the sum of credits over all counted rows.
	TotalCredits float64

	// QualityPoints is the sum of credits × grade points over all counted rows.
	QualityPoints float64
}

// ParseCredits parses the raw credits text of a row. The second return value
// reports whether the row counts toward the summary: only positive finite
// values do. Anything else (empty text, garbage, zero, negatives, inf/NaN)
// means the row is skipped, never an error.
func ParseCredits(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// ComputeSummary folds a sequence of course rows into a Summary using the
// given scale.
//
// The function is pure and total: it never fails, regardless of input. Rows
// whose credits do not parse to a positive finite number are excluded from
// both sums; a grade missing from the scale contributes 0 quality points but
// its credits still count. When nothing counts, the GPA is a defined 0 —
// not a division error.
//
// The fold is a commutative accumulation, so permuting the rows never
// changes the result.
func ComputeSummary(rows []models.CourseRow, scale Scale) Summary {
	var totalCredits, qualityPoints float64

	for _, row := range rows {
		credits, ok := ParseCredits(row.Credits)
		if !ok {
			continue
		}
		totalCredits += credits
		qualityPoints += credits * scale.Points(row.Grade)
	}

	var gpa float64
	if totalCredits > 0 {
		gpa = qualityPoints / totalCredits
	}

	return Summary{
		GPA:           gpa,
		TotalCredits:  totalCredits,
		QualityPoints: qualityPoints,
	}
}

// FormatGPA renders a GPA to the given number of decimal places. The engine
// itself keeps full precision; this is the canonical display formatting.
func FormatGPA(gpa float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(gpa, 'f', precision, 64)
}
