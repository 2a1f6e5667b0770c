// services/fuel_service.go
package services

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/utils"
)

// FuelService handles fuel expense business logic
type FuelService struct {
	repo *repository.FuelRepository
}

// NewFuelService creates a new fuel service
func NewFuelService(repo *repository.FuelRepository) *FuelService {
	return &FuelService{repo: repo}
}

// ListFuelExpenses returns all fuel expenses
func (s *FuelService) ListFuelExpenses() ([]models.FuelExpense, error) {
	expenses, err := s.repo.List()
	if err != nil {
		return nil, storeError("Fuel expense", err)
	}
	return expenses, nil
}

// CreateFuelExpense validates and stores a new fuel expense
func (s *FuelService) CreateFuelExpense(request *models.CreateFuelExpenseRequest) (string, error) {
	if err := utils.ValidateDate(request.Data, "data"); err != nil {
		return "", err
	}
	if err := utils.ValidatePositive(request.Valor, "valor"); err != nil {
		return "", err
	}
	if request.Litros != nil {
		if err := utils.ValidatePositive(*request.Litros, "litros"); err != nil {
			return "", err
		}
	}

	id, err := s.repo.Create(models.FuelExpense{
		Data:   request.Data,
		Valor:  request.Valor,
		Litros: request.Litros,
	})
	if err != nil {
		return "", storeError("Fuel expense", err)
	}
	return id, nil
}

// DeleteFuelExpense removes a fuel expense
func (s *FuelService) DeleteFuelExpense(id string) error {
	return storeError("Fuel expense", s.repo.Delete(id))
}
