// repository/general_expense_repository.go
package repository

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/store"
)

// GeneralExpenseRepository handles store operations for general expenses
type GeneralExpenseRepository struct {
	store store.Store
}

// NewGeneralExpenseRepository creates a new GeneralExpenseRepository
func NewGeneralExpenseRepository(s store.Store) *GeneralExpenseRepository {
	return &GeneralExpenseRepository{store: s}
}

// List returns all general expenses
func (r *GeneralExpenseRepository) List() ([]models.GeneralExpense, error) {
	records, err := r.store.List(store.GeneralExpensesCollection)
	if err != nil {
		return nil, err
	}

	expenses := make([]models.GeneralExpense, 0, len(records))
	for _, rec := range records {
		var expense models.GeneralExpense
		if err := fromRecord(rec, &expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// Create stores a new general expense and returns its id
func (r *GeneralExpenseRepository) Create(expense models.GeneralExpense) (string, error) {
	doc, err := toDoc(expense)
	if err != nil {
		return "", err
	}
	return r.store.Add(store.GeneralExpensesCollection, doc)
}

// Delete removes a general expense
func (r *GeneralExpenseRepository) Delete(id string) error {
	return r.store.Delete(store.GeneralExpensesCollection, id)
}

// ResetForNewMonth rolls general expenses forward one period in a single
// batched write. One-off expenses are deleted; an expense on its final
// installment is deleted (installment consumed); anything mid-plan survives
// with currentInstallment advanced by exactly one and no other field changed.
func (r *GeneralExpenseRepository) ResetForNewMonth() error {
	expenses, err := r.List()
	if err != nil {
		return err
	}

	ops := make([]store.WriteOp, 0, len(expenses))
	for _, expense := range expenses {
		if !expense.HasInstallments() || *expense.CurrentInstallment >= *expense.TotalInstallments {
			ops = append(ops, store.WriteOp{
				Collection: store.GeneralExpensesCollection,
				ID:         expense.ID,
				Kind:       store.OpDelete,
			})
			continue
		}
		ops = append(ops, store.WriteOp{
			Collection: store.GeneralExpensesCollection,
			ID:         expense.ID,
			Kind:       store.OpPatch,
			Patch: store.Update{
				Set: map[string]interface{}{
					"currentInstallment": *expense.CurrentInstallment + 1,
				},
			},
		})
	}
	if len(ops) == 0 {
		return nil
	}
	return r.store.Batch(ops)
}
