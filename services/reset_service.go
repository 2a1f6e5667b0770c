// services/reset_service.go
package services

import (
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/utils"
)

// ResetService performs the user-triggered monthly reset. The three bulk
// mutations span three collections and the store offers no umbrella
// transaction, so a failure mid-way leaves earlier steps applied; that
// partial state is reported explicitly, never as a full success.
type ResetService struct {
	students *repository.StudentRepository
	fuel     *repository.FuelRepository
	general  *repository.GeneralExpenseRepository
	trips    *repository.TripRepository

	// includeTrips restores the historical behavior of bulk-deleting trips
	// on reset. The current product direction leaves trips alone and relies
	// on explicit per-trip archiving instead.
	includeTrips bool
}

// NewResetService creates a new reset service
func NewResetService(
	students *repository.StudentRepository,
	fuel *repository.FuelRepository,
	general *repository.GeneralExpenseRepository,
	trips *repository.TripRepository,
	includeTrips bool,
) *ResetService {
	return &ResetService{
		students:     students,
		fuel:         fuel,
		general:      general,
		trips:        trips,
		includeTrips: includeTrips,
	}
}

// Reset step names reported to the caller
const (
	StepStudents        = "students"
	StepFuelExpenses    = "fuelExpenses"
	StepGeneralExpenses = "generalExpenses"
	StepTrips           = "trips"
)

// ResetMonth runs the monthly reset:
//  1. every student goes back to Pendente, regardless of current status;
//  2. all fuel expenses are deleted;
//  3. general expenses roll forward one installment period (one-off and
//     final-installment records are deleted, mid-plan ones advance by one);
//  4. optionally, all trips are deleted.
//
// The returned step list names the collections that were actually reset.
func (s *ResetService) ResetMonth() ([]string, error) {
	var completed []string

	steps := []struct {
		name string
		run  func() error
	}{
		{StepStudents, s.students.ResetAllPayments},
		{StepFuelExpenses, s.fuel.DeleteAll},
		{StepGeneralExpenses, s.general.ResetForNewMonth},
	}
	if s.includeTrips {
		steps = append(steps, struct {
			name string
			run  func() error
		}{StepTrips, s.trips.DeleteAll})
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			if len(completed) == 0 {
				return nil, storeError("Reset", err)
			}
			return completed, utils.NewPartialResetError(completed, step.name, err)
		}
		completed = append(completed, step.name)
	}
	return completed, nil
}
