package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/store"
)

func TestInstitutionRepository_NameUniquenessIsCaseInsensitive(t *testing.T) {
	repo := NewInstitutionRepository(store.NewMemoryStore())

	_, err := repo.Create("UNIP")
	require.NoError(t, err)

	_, err = repo.Create("unip")
	assert.Error(t, err)

	_, err = repo.Create("Anhanguera")
	require.NoError(t, err)

	institutions, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, institutions, 2)
}

func TestInstitutionRepository_DeleteDoesNotTouchStudents(t *testing.T) {
	st := store.NewMemoryStore()
	institutions := NewInstitutionRepository(st)
	students := NewStudentRepository(st)

	institutionID, err := institutions.Create("Anhembi Morumbi")
	require.NoError(t, err)

	studentID, err := students.Create(models.Student{
		Name:             "Ana Silva",
		InstitutionID:    institutionID,
		ValorMensalidade: 450,
		StatusPagamento:  "Pago",
		Turno:            "Manhã",
	})
	require.NoError(t, err)

	require.NoError(t, institutions.Delete(institutionID))

	// The student keeps its dangling reference; resolution falls back to
	// "N/A" at display time
	student, err := students.Get(studentID)
	require.NoError(t, err)
	assert.Equal(t, institutionID, student.InstitutionID)
}
