package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/store"
)

// fakeCategorizer returns a fixed category without calling any API
type fakeCategorizer struct {
	category string
	err      error
	calls    int
}

func (f *fakeCategorizer) Categorize(description string) (string, error) {
	f.calls++
	return f.category, f.err
}

func newExpenseFixture(categorizer Categorizer) (*ExpenseService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewExpenseService(repository.NewGeneralExpenseRepository(st), categorizer), st
}

func TestExpenseService_CreateUsesCategorizerWhenCategoryEmpty(t *testing.T) {
	categorizer := &fakeCategorizer{category: "Alimentação"}
	service, _ := newExpenseFixture(categorizer)

	id, err := service.CreateGeneralExpense(&models.CreateGeneralExpenseRequest{
		Data:          "2025-03-01",
		Valor:         80,
		Description:   "Almoço no restaurante",
		PaymentMethod: "PIX",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, categorizer.calls)

	expenses, _ := service.ListGeneralExpenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, "Alimentação", expenses[0].Category)
}

func TestExpenseService_ManualCategorySkipsCategorizer(t *testing.T) {
	categorizer := &fakeCategorizer{category: "Outros"}
	service, _ := newExpenseFixture(categorizer)

	_, err := service.CreateGeneralExpense(&models.CreateGeneralExpenseRequest{
		Data:          "2025-03-01",
		Valor:         120,
		Description:   "Troca de óleo",
		PaymentMethod: "PIX",
		Category:      "Manutenção do Veículo",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, categorizer.calls)
}

func TestExpenseService_CategorizerFailurePropagates(t *testing.T) {
	categorizer := &fakeCategorizer{err: errors.New("api down")}
	service, _ := newExpenseFixture(categorizer)

	_, err := service.CreateGeneralExpense(&models.CreateGeneralExpenseRequest{
		Data:          "2025-03-01",
		Valor:         50,
		Description:   "Farmácia",
		PaymentMethod: "PIX",
	})
	assert.Error(t, err)

	expenses, _ := service.ListGeneralExpenses()
	assert.Empty(t, expenses)
}

func TestExpenseService_InstallmentsOnlyForNonPix(t *testing.T) {
	service, _ := newExpenseFixture(&fakeCategorizer{category: "Pessoal"})

	three := 3
	_, err := service.CreateGeneralExpense(&models.CreateGeneralExpenseRequest{
		Data:              "2025-03-01",
		Valor:             300,
		Description:       "Notebook",
		PaymentMethod:     "Cartão Nubank",
		Category:          "Pessoal",
		TotalInstallments: &three,
	})
	require.NoError(t, err)

	_, err = service.CreateGeneralExpense(&models.CreateGeneralExpenseRequest{
		Data:              "2025-03-02",
		Valor:             90,
		Description:       "Mercado",
		PaymentMethod:     "PIX",
		Category:          "Alimentação",
		TotalInstallments: &three,
	})
	require.NoError(t, err)

	expenses, _ := service.ListGeneralExpenses()
	require.Len(t, expenses, 2)
	for _, expense := range expenses {
		if expense.PaymentMethod == "PIX" {
			assert.False(t, expense.HasInstallments())
		} else {
			require.True(t, expense.HasInstallments())
			assert.Equal(t, 1, *expense.CurrentInstallment)
			assert.Equal(t, 3, *expense.TotalInstallments)
		}
	}
}

func TestExpenseService_RejectsUnknownCategoryAndMethod(t *testing.T) {
	service, _ := newExpenseFixture(&fakeCategorizer{category: "Outros"})

	_, err := service.CreateGeneralExpense(&models.CreateGeneralExpenseRequest{
		Data:          "2025-03-01",
		Valor:         50,
		Description:   "Algo",
		PaymentMethod: "Cheque",
	})
	assert.Error(t, err)

	_, err = service.CreateGeneralExpense(&models.CreateGeneralExpenseRequest{
		Data:          "2025-03-01",
		Valor:         50,
		Description:   "Algo",
		PaymentMethod: "PIX",
		Category:      "Inexistente",
	})
	assert.Error(t, err)
}
