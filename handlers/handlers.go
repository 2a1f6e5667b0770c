// handlers/handlers.go
package handlers

import (
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/services"
	"github.com/topvan/topvan-backend/store"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	StudentService     *services.StudentService
	InstitutionService *services.InstitutionService
	TripService        *services.TripService
	FuelService        *services.FuelService
	ExpenseService     *services.ExpenseService
	ResetService       *services.ResetService
	SummaryService     *services.SummaryService
	ExcelService       *services.ExcelService
	Categorizer        services.Categorizer
}

// NewHandlerServices wires repositories and services over the given store
func NewHandlerServices(s store.Store, resetIncludesTrips bool) *HandlerServices {
	studentRepo := repository.NewStudentRepository(s)
	institutionRepo := repository.NewInstitutionRepository(s)
	tripRepo := repository.NewTripRepository(s)
	fuelRepo := repository.NewFuelRepository(s)
	generalRepo := repository.NewGeneralExpenseRepository(s)

	categorizer := services.NewCategorizationService()
	studentService := services.NewStudentService(studentRepo)
	tripService := services.NewTripService(tripRepo)
	fuelService := services.NewFuelService(fuelRepo)
	expenseService := services.NewExpenseService(generalRepo, categorizer)
	summaryService := services.NewSummaryService()

	return &HandlerServices{
		StudentService:     studentService,
		InstitutionService: services.NewInstitutionService(institutionRepo),
		TripService:        tripService,
		FuelService:        fuelService,
		ExpenseService:     expenseService,
		ResetService:       services.NewResetService(studentRepo, fuelRepo, generalRepo, tripRepo, resetIncludesTrips),
		SummaryService:     summaryService,
		ExcelService:       services.NewExcelService(studentService, tripService, fuelService, expenseService, summaryService),
		Categorizer:        categorizer,
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(s store.Store, resetIncludesTrips bool) {
	handlerServices = NewHandlerServices(s, resetIncludesTrips)
}
