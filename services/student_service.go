// services/student_service.go
package services

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/store"
	"github.com/topvan/topvan-backend/utils"
)

// StudentService handles student business logic
type StudentService struct {
	repo *repository.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(repo *repository.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

// ListStudents returns all students
func (s *StudentService) ListStudents() ([]models.Student, error) {
	students, err := s.repo.List()
	if err != nil {
		return nil, storeError("Student", err)
	}
	return students, nil
}

// CreateStudent validates and stores a new student
func (s *StudentService) CreateStudent(request *models.CreateStudentRequest) (string, error) {
	if err := utils.ValidateRequired(request.Name, "name"); err != nil {
		return "", err
	}
	if err := utils.ValidatePositive(request.ValorMensalidade, "valorMensalidade"); err != nil {
		return "", err
	}
	if request.Turno != utils.TurnoManha && request.Turno != utils.TurnoNoite {
		return "", utils.NewValidationError("turno must be Manhã or Noite")
	}

	status := request.StatusPagamento
	if status == "" {
		status = utils.StatusPendente
	}
	if status != utils.StatusPago && status != utils.StatusPendente {
		return "", utils.NewValidationError("statusPagamento must be Pago or Pendente")
	}

	id, err := s.repo.Create(models.Student{
		Name:             request.Name,
		InstitutionID:    request.InstitutionID,
		ValorMensalidade: request.ValorMensalidade,
		Observacoes:      request.Observacoes,
		StatusPagamento:  status,
		Turno:            request.Turno,
	})
	if err != nil {
		return "", storeError("Student", err)
	}
	return id, nil
}

// UpdateStudent applies a partial patch: only the supplied fields change
func (s *StudentService) UpdateStudent(request *models.UpdateStudentRequest) error {
	set := map[string]interface{}{}
	if request.Name != nil {
		if err := utils.ValidateRequired(*request.Name, "name"); err != nil {
			return err
		}
		set["name"] = *request.Name
	}
	if request.InstitutionID != nil {
		set["institutionId"] = *request.InstitutionID
	}
	if request.ValorMensalidade != nil {
		if err := utils.ValidatePositive(*request.ValorMensalidade, "valorMensalidade"); err != nil {
			return err
		}
		set["valorMensalidade"] = *request.ValorMensalidade
	}
	if request.Observacoes != nil {
		set["observacoes"] = *request.Observacoes
	}
	if request.StatusPagamento != nil {
		if *request.StatusPagamento != utils.StatusPago && *request.StatusPagamento != utils.StatusPendente {
			return utils.NewValidationError("statusPagamento must be Pago or Pendente")
		}
		set["statusPagamento"] = *request.StatusPagamento
	}
	if request.Turno != nil {
		if *request.Turno != utils.TurnoManha && *request.Turno != utils.TurnoNoite {
			return utils.NewValidationError("turno must be Manhã or Noite")
		}
		set["turno"] = *request.Turno
	}
	if len(set) == 0 {
		return utils.NewValidationError("no fields to update")
	}

	return storeError("Student", s.repo.Update(request.ID, store.Update{Set: set}))
}

// DeleteStudent removes a student
func (s *StudentService) DeleteStudent(id string) error {
	return storeError("Student", s.repo.Delete(id))
}

// TogglePayment flips a student's payment status between Pago and Pendente
func (s *StudentService) TogglePayment(id string) error {
	student, err := s.repo.Get(id)
	if err != nil {
		return storeError("Student", err)
	}

	newStatus := utils.StatusPago
	if student.StatusPagamento == utils.StatusPago {
		newStatus = utils.StatusPendente
	}
	return storeError("Student", s.repo.Update(id, store.Update{
		Set: map[string]interface{}{"statusPagamento": newStatus},
	}))
}

// ResetAllPayments forces every student back to Pendente. Applying it twice
// yields the same state as once.
func (s *StudentService) ResetAllPayments() error {
	return storeError("Student", s.repo.ResetAllPayments())
}
