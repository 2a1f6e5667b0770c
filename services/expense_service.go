// services/expense_service.go
package services

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/utils"
)

// ExpenseService handles general expense business logic
type ExpenseService struct {
	repo        *repository.GeneralExpenseRepository
	categorizer Categorizer
}

// NewExpenseService creates a new general expense service
func NewExpenseService(repo *repository.GeneralExpenseRepository, categorizer Categorizer) *ExpenseService {
	return &ExpenseService{repo: repo, categorizer: categorizer}
}

// ListGeneralExpenses returns all general expenses
func (s *ExpenseService) ListGeneralExpenses() ([]models.GeneralExpense, error) {
	expenses, err := s.repo.List()
	if err != nil {
		return nil, storeError("Expense", err)
	}
	return expenses, nil
}

// CreateGeneralExpense validates and stores a new expense. When no category
// is supplied the description is sent to the categorizer. PIX purchases are
// one-off; any other payment method may carry installments, starting at 1,
// with valor holding the total across all of them.
func (s *ExpenseService) CreateGeneralExpense(request *models.CreateGeneralExpenseRequest) (string, error) {
	if err := utils.ValidateDate(request.Data, "data"); err != nil {
		return "", err
	}
	if err := utils.ValidatePositive(request.Valor, "valor"); err != nil {
		return "", err
	}
	if err := utils.ValidateRequired(request.Description, "description"); err != nil {
		return "", err
	}
	if !utils.IsValidPaymentMethod(request.PaymentMethod) {
		return "", utils.NewValidationError("unknown payment method")
	}

	category := request.Category
	if category == "" {
		assigned, err := s.categorizer.Categorize(request.Description)
		if err != nil {
			return "", err
		}
		category = assigned
	} else if !utils.IsValidCategory(category) {
		return "", utils.NewValidationError("unknown expense category")
	}

	expense := models.GeneralExpense{
		Data:          request.Data,
		Valor:         request.Valor,
		Description:   request.Description,
		PaymentMethod: request.PaymentMethod,
		Category:      category,
	}
	if request.PaymentMethod != utils.PaymentMethodPix && request.TotalInstallments != nil {
		first := 1
		if err := utils.ValidateInstallments(first, *request.TotalInstallments); err != nil {
			return "", err
		}
		expense.CurrentInstallment = &first
		expense.TotalInstallments = request.TotalInstallments
	}

	id, err := s.repo.Create(expense)
	if err != nil {
		return "", storeError("Expense", err)
	}
	return id, nil
}

// DeleteGeneralExpense removes a general expense
func (s *ExpenseService) DeleteGeneralExpense(id string) error {
	return storeError("Expense", s.repo.Delete(id))
}
