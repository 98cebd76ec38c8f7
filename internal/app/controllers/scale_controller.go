package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campustools/gradepoint/internal/app/gpa"
	"github.com/campustools/gradepoint/internal/app/models/dto"
	"github.com/campustools/gradepoint/internal/app/services"
)

// ScaleController serves the grade scale for display purposes
type ScaleController struct {
	tableService *services.TableService
}

// NewScaleController creates a new ScaleController
func NewScaleController(tableService *services.TableService) *ScaleController {
	return &ScaleController{tableService: tableService}
}

// GetGradeScale lists the grade scale
// @Summary Get the grade scale
// @Description Lists the letter grades and their grade-point values, best to worst
// @Tags grade-scale
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.GradeScaleResponse} "Grade scale retrieved successfully"
// @Router /grade-scale [get]
func (c *ScaleController) GetGradeScale(ctx *gin.Context) {
	scale := c.tableService.Scale()

	entries := make([]dto.GradeScaleEntry, 0, len(gpa.Symbols))
	for _, symbol := range gpa.Symbols {
		entries = append(entries, dto.GradeScaleEntry{
			Grade:  symbol,
			Points: scale.Points(symbol),
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.GradeScaleResponse{Scale: entries},
		Timestamp: time.Now(),
	})
}
