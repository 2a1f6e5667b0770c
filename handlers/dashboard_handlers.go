// handlers/dashboard_handlers.go
package handlers

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardSummary returns the monthly financial dashboard
func GetDashboardSummary(c *gin.Context) {
	students, err := handlerServices.StudentService.ListStudents()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	trips, err := handlerServices.TripService.ListTrips()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	fuel, err := handlerServices.FuelService.ListFuelExpenses()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	general, err := handlerServices.ExpenseService.ListGeneralExpenses()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	summary := handlerServices.SummaryService.BuildSummary(students, trips, fuel, general)
	utils.HandleSuccess(c, summary)
}

// ResetMonth runs the monthly reset. A partial failure reports which steps
// completed instead of claiming success.
func ResetMonth(c *gin.Context) {
	completed, err := handlerServices.ResetService.ResetMonth()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, models.ResetMonthResponse{CompletedSteps: completed})
}
