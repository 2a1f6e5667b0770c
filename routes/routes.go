package routes

import (
	"github.com/topvan/topvan-backend/handlers"
	"github.com/topvan/topvan-backend/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, s store.Store, resetIncludesTrips bool) {
	handlers.InitHandlers(s, resetIncludesTrips)

	v1 := router.Group("/api/v1")
	{
		// Student endpoints
		v1.POST("/students/create", handlers.CreateStudent)
		v1.POST("/students/list", handlers.ListStudents)
		v1.POST("/students/update", handlers.UpdateStudent)
		v1.POST("/students/remove", handlers.RemoveStudent)
		v1.POST("/students/togglePayment", handlers.ToggleStudentPayment)
		v1.POST("/students/resetPayments", handlers.ResetStudentPayments)

		// Institution endpoints
		v1.POST("/institutions/create", handlers.CreateInstitution)
		v1.POST("/institutions/list", handlers.ListInstitutions)
		v1.POST("/institutions/remove", handlers.RemoveInstitution)

		// Trip endpoints
		v1.POST("/trips/create", handlers.CreateTrip)
		v1.POST("/trips/list", handlers.ListTrips)
		v1.POST("/trips/update", handlers.UpdateTrip)
		v1.POST("/trips/remove", handlers.RemoveTrip)
		v1.POST("/trips/togglePayment", handlers.ToggleTripPayment)
		v1.POST("/trips/archivePaid", handlers.ArchivePaidTrips)

		// Fuel expense endpoints
		v1.POST("/fuel/create", handlers.CreateFuelExpense)
		v1.POST("/fuel/list", handlers.ListFuelExpenses)
		v1.POST("/fuel/remove", handlers.RemoveFuelExpense)

		// General expense endpoints
		v1.POST("/expenses/create", handlers.CreateGeneralExpense)
		v1.POST("/expenses/list", handlers.ListGeneralExpenses)
		v1.POST("/expenses/remove", handlers.RemoveGeneralExpense)
		v1.POST("/expenses/categorize", handlers.CategorizeExpense)

		// Dashboard and monthly reset
		v1.POST("/dashboard/summary", handlers.GetDashboardSummary)
		v1.POST("/month/reset", handlers.ResetMonth)

		// Report export
		v1.GET("/reports/excel", handlers.ExportMonthlyReport)
	}
}
