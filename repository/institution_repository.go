// repository/institution_repository.go
package repository

import (
	"strings"

	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/store"
	"github.com/topvan/topvan-backend/utils"
)

// InstitutionRepository handles store operations for institutions
type InstitutionRepository struct {
	store store.Store
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(s store.Store) *InstitutionRepository {
	return &InstitutionRepository{store: s}
}

// List returns all institutions
func (r *InstitutionRepository) List() ([]models.Institution, error) {
	records, err := r.store.List(store.InstitutionsCollection)
	if err != nil {
		return nil, err
	}

	institutions := make([]models.Institution, 0, len(records))
	for _, rec := range records {
		var institution models.Institution
		if err := fromRecord(rec, &institution); err != nil {
			return nil, err
		}
		institutions = append(institutions, institution)
	}
	return institutions, nil
}

// Create stores a new institution. Name uniqueness is enforced here,
// case-insensitively, since the store has no unique constraint.
func (r *InstitutionRepository) Create(name string) (string, error) {
	existing, err := r.List()
	if err != nil {
		return "", err
	}
	for _, institution := range existing {
		if strings.EqualFold(institution.Name, name) {
			return "", utils.NewValidationError(utils.ErrInstitutionExists)
		}
	}

	return r.store.Add(store.InstitutionsCollection, map[string]interface{}{
		"name": name,
	})
}

// Delete removes an institution. Students referencing it keep their
// institutionId; the reference just dangles.
func (r *InstitutionRepository) Delete(id string) error {
	return r.store.Delete(store.InstitutionsCollection, id)
}
