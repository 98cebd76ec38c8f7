package controllers

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campustools/gradepoint/internal/app/gpa"
	"github.com/campustools/gradepoint/internal/app/models"
	"github.com/campustools/gradepoint/internal/app/models/dto"
	"github.com/campustools/gradepoint/internal/app/services"
	"github.com/campustools/gradepoint/internal/middleware"
)

// TableController handles course-table operations
type TableController struct {
	tableService *services.TableService

	// precision is the canonical GPA display precision. It is atomic
	// because the config watcher may update it while requests are running.
	precision atomic.Int32
}

// NewTableController creates a new TableController
func NewTableController(tableService *services.TableService, displayPrecision int) *TableController {
	c := &TableController{tableService: tableService}
	c.precision.Store(int32(displayPrecision))
	return c
}

// SetDisplayPrecision updates the GPA display precision at runtime.
func (c *TableController) SetDisplayPrecision(precision int) {
	c.precision.Store(int32(precision))
}

// tableResponse pairs a table with its freshly computed summary.
func (c *TableController) tableResponse(table *models.CourseTable) dto.TableResponse {
	return dto.TableResponse{
		Table:   *table,
		Summary: c.summaryResponse(c.tableService.Summarize(table)),
	}
}

func (c *TableController) summaryResponse(summary gpa.Summary) dto.SummaryResponse {
	return dto.SummaryResponse{
		GPA:           summary.GPA,
		GPADisplay:    gpa.FormatGPA(summary.GPA, int(c.precision.Load())),
		TotalCredits:  summary.TotalCredits,
		QualityPoints: summary.QualityPoints,
	}
}

// CreateTable creates a new course table
// @Summary Create a course table
// @Description Creates a new course table pre-populated with the default empty rows
// @Tags tables
// @Accept json
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.TableResponse} "Table created successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tables [post]
func (c *TableController) CreateTable(ctx *gin.Context) {
	table, err := c.tableService.CreateTable(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      c.tableResponse(table),
		Timestamp: time.Now(),
	})
}

// GetTable retrieves a course table by ID
// @Summary Get a course table
// @Description Retrieves a course table and its current summary
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Table retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Table not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tables/{id} [get]
func (c *TableController) GetTable(ctx *gin.Context) {
	table, err := c.tableService.GetTable(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.tableResponse(table),
		Timestamp: time.Now(),
	})
}

// GetSummary retrieves only the summary of a course table
// @Summary Get a table's GPA summary
// @Description Retrieves the GPA, total credits and quality points for a course table
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} dto.APIResponse{data=dto.SummaryResponse} "Summary retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Table not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tables/{id}/summary [get]
func (c *TableController) GetSummary(ctx *gin.Context) {
	table, err := c.tableService.GetTable(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.summaryResponse(c.tableService.Summarize(table)),
		Timestamp: time.Now(),
	})
}

// AddRow appends a new default row to a course table
// @Summary Add a row
// @Description Appends one fresh default row to the end of the table
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Row added successfully"
// @Failure 404 {object} dto.ErrorResponse "Table not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tables/{id}/rows [post]
func (c *TableController) AddRow(ctx *gin.Context) {
	table, err := c.tableService.AddRow(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.tableResponse(table),
		Timestamp: time.Now(),
	})
}

// UpdateRow applies a partial change to one row
// @Summary Update a row
// @Description Applies a partial change to the row matching rowId; fields absent from the body are untouched. An unknown rowId leaves the table unchanged.
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param rowId path string true "Row ID"
// @Param request body dto.UpdateRowRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Row updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Table not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tables/{id}/rows/{rowId} [patch]
func (c *TableController) UpdateRow(ctx *gin.Context) {
	var req dto.UpdateRowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	table, err := c.tableService.UpdateRow(ctx, ctx.Param("id"), ctx.Param("rowId"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.tableResponse(table),
		Timestamp: time.Now(),
	})
}

// RemoveRow removes one row from a course table
// @Summary Remove a row
// @Description Removes the row matching rowId. An unknown rowId leaves the table unchanged. The table may become empty, in which case the summary is all zeros.
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param rowId path string true "Row ID"
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Row removed successfully"
// @Failure 404 {object} dto.ErrorResponse "Table not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tables/{id}/rows/{rowId} [delete]
func (c *TableController) RemoveRow(ctx *gin.Context) {
	table, err := c.tableService.RemoveRow(ctx, ctx.Param("id"), ctx.Param("rowId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.tableResponse(table),
		Timestamp: time.Now(),
	})
}

// ResetTable resets a course table to its default rows
// @Summary Reset a course table
// @Description Replaces the table's rows with the default empty row set
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} dto.APIResponse{data=dto.TableResponse} "Table reset successfully"
// @Failure 404 {object} dto.ErrorResponse "Table not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tables/{id}/reset [post]
func (c *TableController) ResetTable(ctx *gin.Context) {
	table, err := c.tableService.ResetTable(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.tableResponse(table),
		Timestamp: time.Now(),
	})
}
