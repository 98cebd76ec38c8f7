package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campustools/gradepoint/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	tableController *controllers.TableController,
	scaleController *controllers.ScaleController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Grade scale (read-only)
	v1.GET("/grade-scale", scaleController.GetGradeScale)

	// Course table lifecycle
	tables := v1.Group("/tables")
	{
		tables.POST("", tableController.CreateTable)
		tables.GET("/:id", tableController.GetTable)
		tables.GET("/:id/summary", tableController.GetSummary)
		tables.POST("/:id/reset", tableController.ResetTable)

		tables.POST("/:id/rows", tableController.AddRow)
		tables.PATCH("/:id/rows/:rowId", tableController.UpdateRow)
		tables.DELETE("/:id/rows/:rowId", tableController.RemoveRow)
	}
}
