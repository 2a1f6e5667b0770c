package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/store"
	"github.com/topvan/topvan-backend/utils"
)

type resetFixture struct {
	store   *store.MemoryStore
	service *ResetService

	students *repository.StudentRepository
	fuel     *repository.FuelRepository
	general  *repository.GeneralExpenseRepository
	trips    *repository.TripRepository
}

func newResetFixture(includeTrips bool) *resetFixture {
	st := store.NewMemoryStore()
	students := repository.NewStudentRepository(st)
	fuel := repository.NewFuelRepository(st)
	general := repository.NewGeneralExpenseRepository(st)
	trips := repository.NewTripRepository(st)
	return &resetFixture{
		store:    st,
		service:  NewResetService(students, fuel, general, trips, includeTrips),
		students: students,
		fuel:     fuel,
		general:  general,
		trips:    trips,
	}
}

func TestResetService_StudentsAllPendingAndIdempotent(t *testing.T) {
	f := newResetFixture(false)
	f.students.Create(models.Student{Name: "Ana", ValorMensalidade: 450, StatusPagamento: "Pago", Turno: "Manhã"})
	f.students.Create(models.Student{Name: "Bruno", ValorMensalidade: 400, StatusPagamento: "Pendente", Turno: "Noite"})

	completed, err := f.service.ResetMonth()
	require.NoError(t, err)
	assert.Equal(t, []string{StepStudents, StepFuelExpenses, StepGeneralExpenses}, completed)

	first, _ := f.students.List()
	for _, student := range first {
		assert.Equal(t, "Pendente", student.StatusPagamento)
	}

	// Resetting twice yields the same state as once
	_, err = f.service.ResetMonth()
	require.NoError(t, err)
	second, _ := f.students.List()
	assert.ElementsMatch(t, first, second)
}

func TestResetService_FuelExpensesAllDeleted(t *testing.T) {
	f := newResetFixture(false)
	f.fuel.Create(models.FuelExpense{Data: "2025-03-01", Valor: 200})
	f.fuel.Create(models.FuelExpense{Data: "2025-03-15", Valor: 180})

	_, err := f.service.ResetMonth()
	require.NoError(t, err)

	remaining, _ := f.fuel.List()
	assert.Empty(t, remaining)
}

func TestResetService_GeneralExpenseInstallmentRollForward(t *testing.T) {
	f := newResetFixture(false)

	current, total := 1, 3
	f.general.Create(models.GeneralExpense{
		Data: "2025-03-01", Valor: 300, Description: "Consulta", Category: "Saúde",
		PaymentMethod: "Cartão Nubank", CurrentInstallment: &current, TotalInstallments: &total,
	})
	f.general.Create(models.GeneralExpense{
		Data: "2025-03-02", Valor: 80, Description: "Mercado", Category: "Alimentação",
		PaymentMethod: "PIX",
	})

	// First reset: the one-off goes away, the installment advances to 2/3
	_, err := f.service.ResetMonth()
	require.NoError(t, err)

	expenses, _ := f.general.List()
	require.Len(t, expenses, 1)
	assert.Equal(t, "Consulta", expenses[0].Description)
	assert.Equal(t, 2, *expenses[0].CurrentInstallment)
	assert.Equal(t, 3, *expenses[0].TotalInstallments)
	assert.Equal(t, 300.0, expenses[0].Valor)
	assert.Equal(t, "Saúde", expenses[0].Category)

	// Second reset: 3/3
	_, err = f.service.ResetMonth()
	require.NoError(t, err)
	expenses, _ = f.general.List()
	require.Len(t, expenses, 1)
	assert.Equal(t, 3, *expenses[0].CurrentInstallment)

	// Third reset consumes the final installment
	_, err = f.service.ResetMonth()
	require.NoError(t, err)
	expenses, _ = f.general.List()
	assert.Empty(t, expenses)
}

func TestResetService_TripsUntouchedByDefault(t *testing.T) {
	f := newResetFixture(false)
	f.trips.Create(models.Trip{Destino: "Campinas", Data: "2025-03-01", Valor: 350, StatusPagamento: "Pago"})

	_, err := f.service.ResetMonth()
	require.NoError(t, err)

	trips, _ := f.trips.List()
	require.Len(t, trips, 1)
	assert.Equal(t, "Pago", trips[0].StatusPagamento)
}

func TestResetService_TripsDeletedWhenPolicyEnabled(t *testing.T) {
	f := newResetFixture(true)
	f.trips.Create(models.Trip{Destino: "Campinas", Data: "2025-03-01", Valor: 350, StatusPagamento: "Pago"})

	completed, err := f.service.ResetMonth()
	require.NoError(t, err)
	assert.Contains(t, completed, StepTrips)

	trips, _ := f.trips.List()
	assert.Empty(t, trips)
}

// failingStore wraps a working store and fails every write touching one
// collection, to simulate a mid-reset outage
type failingStore struct {
	store.Store
	failCollection string
}

var errInjected = errors.New("injected store failure")

func (f *failingStore) List(collection string) ([]store.Record, error) {
	if collection == f.failCollection {
		return nil, errInjected
	}
	return f.Store.List(collection)
}

func (f *failingStore) Batch(ops []store.WriteOp) error {
	for _, op := range ops {
		if op.Collection == f.failCollection {
			return errInjected
		}
	}
	return f.Store.Batch(ops)
}

func TestResetService_PartialFailureIsReportedAsSuch(t *testing.T) {
	st := store.NewMemoryStore()
	failing := &failingStore{Store: st, failCollection: store.GeneralExpensesCollection}

	students := repository.NewStudentRepository(failing)
	fuel := repository.NewFuelRepository(failing)
	general := repository.NewGeneralExpenseRepository(failing)
	trips := repository.NewTripRepository(failing)
	service := NewResetService(students, fuel, general, trips, false)

	students.Create(models.Student{Name: "Ana", ValorMensalidade: 450, StatusPagamento: "Pago", Turno: "Manhã"})
	fuel.Create(models.FuelExpense{Data: "2025-03-01", Valor: 200})

	completed, err := service.ResetMonth()
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, StepGeneralExpenses)
	assert.Contains(t, appErr.Details, StepStudents)

	// The steps that ran before the failure really were applied
	assert.Equal(t, []string{StepStudents, StepFuelExpenses}, completed)
	studentList, _ := students.List()
	assert.Equal(t, "Pendente", studentList[0].StatusPagamento)
	fuelList, _ := fuel.List()
	assert.Empty(t, fuelList)
}

func TestResetService_FirstStepFailureIsPlainError(t *testing.T) {
	st := store.NewMemoryStore()
	failing := &failingStore{Store: st, failCollection: store.StudentsCollection}

	service := NewResetService(
		repository.NewStudentRepository(failing),
		repository.NewFuelRepository(failing),
		repository.NewGeneralExpenseRepository(failing),
		repository.NewTripRepository(failing),
		false,
	)

	completed, err := service.ResetMonth()
	require.Error(t, err)
	assert.Empty(t, completed)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.NotContains(t, appErr.Message, "partially")
}
