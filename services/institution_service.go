// services/institution_service.go
package services

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/utils"
)

// InstitutionService handles institution business logic
type InstitutionService struct {
	repo *repository.InstitutionRepository
}

// NewInstitutionService creates a new institution service
func NewInstitutionService(repo *repository.InstitutionRepository) *InstitutionService {
	return &InstitutionService{repo: repo}
}

// ListInstitutions returns all institutions
func (s *InstitutionService) ListInstitutions() ([]models.Institution, error) {
	institutions, err := s.repo.List()
	if err != nil {
		return nil, storeError("Institution", err)
	}
	return institutions, nil
}

// CreateInstitution validates and stores a new institution
func (s *InstitutionService) CreateInstitution(name string) (string, error) {
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return "", err
	}
	id, err := s.repo.Create(name)
	if err != nil {
		return "", storeError("Institution", err)
	}
	return id, nil
}

// DeleteInstitution removes an institution without touching the students
// that reference it
func (s *InstitutionService) DeleteInstitution(id string) error {
	return storeError("Institution", s.repo.Delete(id))
}
