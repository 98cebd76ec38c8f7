package dto

import (
	"github.com/campustools/gradepoint/internal/app/models"
)

// SummaryResponse is the GPA summary derived from a course table.
//
// GPA carries full precision; GPADisplay is the canonical fixed-precision
// rendering (presentation layers wanting a different precision derive it
// from the raw value).
type SummaryResponse struct {
	GPA           float64 `json:"gpa" example:"3.4285714285714284"`
	GPADisplay    string  `json:"gpaDisplay" example:"3.43"`
	TotalCredits  float64 `json:"totalCredits" example:"7"`
	QualityPoints float64 `json:"qualityPoints" example:"24"`
}

// TableResponse is a course table together with its current summary.
// Every mutation endpoint returns this shape, so clients always hold a
// summary consistent with the rows they display.
type TableResponse struct {
	Table   models.CourseTable `json:"table"`
	Summary SummaryResponse    `json:"summary"`
}

// UpdateRowRequest is a partial row change. Absent fields leave the row's
// current values untouched. Grade is not constrained to the scale's symbol
// set here: an unrecognized grade is stored as-is and counts for zero
// grade points.
type UpdateRowRequest struct {
	CourseName *string `json:"courseName,omitempty" example:"Calculus I"`
	Credits    *string `json:"credits,omitempty" example:"4"`
	Grade      *string `json:"grade,omitempty" example:"B+"`
}

// ToPatch converts the request into the domain patch form.
func (r UpdateRowRequest) ToPatch() models.RowPatch {
	patch := models.RowPatch{
		CourseName: r.CourseName,
		Credits:    r.Credits,
	}
	if r.Grade != nil {
		g := models.GradeSymbol(*r.Grade)
		patch.Grade = &g
	}
	return patch
}

// GradeScaleEntry is one symbol/points pair of the grade scale.
type GradeScaleEntry struct {
	Grade  models.GradeSymbol `json:"grade" example:"A-"`
	Points float64            `json:"points" example:"3.7"`
}

// GradeScaleResponse lists the scale's grades from best to worst.
type GradeScaleResponse struct {
	Scale []GradeScaleEntry `json:"scale"`
}
