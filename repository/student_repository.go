// repository/student_repository.go
package repository

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/store"
	"github.com/topvan/topvan-backend/utils"
)

// StudentRepository handles store operations for students
type StudentRepository struct {
	store store.Store
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(s store.Store) *StudentRepository {
	return &StudentRepository{store: s}
}

// List returns all students
func (r *StudentRepository) List() ([]models.Student, error) {
	records, err := r.store.List(store.StudentsCollection)
	if err != nil {
		return nil, err
	}

	students := make([]models.Student, 0, len(records))
	for _, rec := range records {
		var student models.Student
		if err := fromRecord(rec, &student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, nil
}

// Create stores a new student and returns its id
func (r *StudentRepository) Create(student models.Student) (string, error) {
	doc, err := toDoc(student)
	if err != nil {
		return "", err
	}
	return r.store.Add(store.StudentsCollection, doc)
}

// Update applies a partial patch to a student
func (r *StudentRepository) Update(id string, update store.Update) error {
	return r.store.Patch(store.StudentsCollection, id, update)
}

// Delete removes a student
func (r *StudentRepository) Delete(id string) error {
	return r.store.Delete(store.StudentsCollection, id)
}

// Get returns a single student by id
func (r *StudentRepository) Get(id string) (*models.Student, error) {
	students, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// ResetAllPayments forces every student's statusPagamento back to Pendente
// in one batched write, unconditionally
func (r *StudentRepository) ResetAllPayments() error {
	records, err := r.store.List(store.StudentsCollection)
	if err != nil {
		return err
	}

	ops := make([]store.WriteOp, 0, len(records))
	for _, rec := range records {
		ops = append(ops, store.WriteOp{
			Collection: store.StudentsCollection,
			ID:         rec.ID,
			Kind:       store.OpPatch,
			Patch: store.Update{
				Set: map[string]interface{}{"statusPagamento": utils.StatusPendente},
			},
		})
	}
	if len(ops) == 0 {
		return nil
	}
	return r.store.Batch(ops)
}
