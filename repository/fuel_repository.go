// repository/fuel_repository.go
package repository

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/store"
)

// FuelRepository handles store operations for fuel expenses
type FuelRepository struct {
	store store.Store
}

// NewFuelRepository creates a new FuelRepository
func NewFuelRepository(s store.Store) *FuelRepository {
	return &FuelRepository{store: s}
}

// List returns all fuel expenses
func (r *FuelRepository) List() ([]models.FuelExpense, error) {
	records, err := r.store.List(store.FuelExpensesCollection)
	if err != nil {
		return nil, err
	}

	expenses := make([]models.FuelExpense, 0, len(records))
	for _, rec := range records {
		var expense models.FuelExpense
		if err := fromRecord(rec, &expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// Create stores a new fuel expense and returns its id
func (r *FuelRepository) Create(expense models.FuelExpense) (string, error) {
	doc, err := toDoc(expense)
	if err != nil {
		return "", err
	}
	return r.store.Add(store.FuelExpensesCollection, doc)
}

// Delete removes a fuel expense
func (r *FuelRepository) Delete(id string) error {
	return r.store.Delete(store.FuelExpensesCollection, id)
}

// DeleteAll removes every fuel expense in one batched write
func (r *FuelRepository) DeleteAll() error {
	records, err := r.store.List(store.FuelExpensesCollection)
	if err != nil {
		return err
	}

	ops := make([]store.WriteOp, 0, len(records))
	for _, rec := range records {
		ops = append(ops, store.WriteOp{
			Collection: store.FuelExpensesCollection,
			ID:         rec.ID,
			Kind:       store.OpDelete,
		})
	}
	if len(ops) == 0 {
		return nil
	}
	return r.store.Batch(ops)
}
