package models

import (
	"time"
)

// GradeSymbol is a letter grade on the standard 4.0 scale.
type GradeSymbol string

// Letter grades recognized by the grade scale, best to worst.
const (
	GradeAPlus  GradeSymbol = "A+"
	GradeA      GradeSymbol = "A"
	GradeAMinus GradeSymbol = "A-"
	GradeBPlus  GradeSymbol = "B+"
	GradeB      GradeSymbol = "B"
	GradeBMinus GradeSymbol = "B-"
	GradeCPlus  GradeSymbol = "C+"
	GradeC      GradeSymbol = "C"
	GradeCMinus GradeSymbol = "C-"
	GradeDPlus  GradeSymbol = "D+"
	GradeD      GradeSymbol = "D"
	GradeF      GradeSymbol = "F"
)

// DefaultGrade is the grade assigned to freshly created rows.
const DefaultGrade = GradeAPlus

// CourseRow is one user-entered course in a course table.
//
// Credits is kept as the raw editable text, not a number: the parse happens
// at computation time, and a row whose credits do not parse to a positive
// finite number stays in the table but contributes nothing to the summary.
type CourseRow struct {
	ID         string      `json:"id" example:"b2f7c0e4-3d1a-4a9e-8f0b-6c5d4e3f2a1b"` // Stable row identifier, never used in GPA math
	CourseName string      `json:"courseName" example:"Calculus I"`                   // Free-form label, unused in computation
	Credits    string      `json:"credits" example:"3"`                               // Raw credits text, parsed at computation time
	Grade      GradeSymbol `json:"grade" example:"A+"`                                // Letter grade, defaults to the top grade
}

// CourseTable is an ordered list of course rows owned by one page session.
// Row order is display order only; the summary is order-independent.
type CourseTable struct {
	ID        string      `json:"id" example:"7d3f0a92-5b1c-4e8d-9a6f-0c2b1d4e5f6a"`
	Rows      []CourseRow `json:"rows"`
	CreatedAt time.Time   `json:"createdAt" example:"2026-01-01T10:00:00Z"`
	UpdatedAt time.Time   `json:"updatedAt" example:"2026-01-01T10:05:00Z"`
}

// RowPatch carries a partial row update. Nil fields are left untouched.
type RowPatch struct {
	CourseName *string
	Credits    *string
	Grade      *GradeSymbol
}

// FindRow returns the index of the row with the given id, or -1.
func (t *CourseTable) FindRow(rowID string) int {
	for i := range t.Rows {
		if t.Rows[i].ID == rowID {
			return i
		}
	}
	return -1
}
