package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/store"
)

func newTripFixture() (*TripService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewTripService(repository.NewTripRepository(st)), st
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestTripService_CreateStandaloneTrip(t *testing.T) {
	service, st := newTripFixture()

	response, err := service.CreateTrip(&models.CreateTripRequest{
		Destino: "Campinas",
		Data:    "2025-03-01",
		Valor:   350,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.TripID)
	assert.Empty(t, response.ReturnTripID)

	records, _ := st.List(store.TripsCollection)
	require.Len(t, records, 1)
	assert.Equal(t, "Pendente", records[0].Data["statusPagamento"])
	// Standalone trips carry none of the pairing fields
	_, hasIda := records[0].Data["idaTripId"]
	assert.False(t, hasIda)
}

func TestTripService_CreateTripWithReturnLeg(t *testing.T) {
	service, _ := newTripFixture()

	response, err := service.CreateTrip(&models.CreateTripRequest{
		Destino:   "Santos",
		Data:      "2025-03-01",
		Valor:     500,
		DataVolta: "2025-03-02",
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.ReturnTripID)

	trips, err := service.ListTrips()
	require.NoError(t, err)
	require.Len(t, trips, 2)

	var outbound, returnLeg models.Trip
	for _, trip := range trips {
		if trip.IsReturnTrip {
			returnLeg = trip
		} else {
			outbound = trip
		}
	}

	assert.Equal(t, outbound.ID, outbound.IdaTripID)
	assert.True(t, outbound.TemVolta)
	assert.Equal(t, "2025-03-02", outbound.DataVolta)

	assert.Equal(t, "Volta de Santos", returnLeg.Destino)
	assert.Equal(t, 0.0, returnLeg.Valor)
	assert.Equal(t, outbound.ID, returnLeg.IdaTripID)
	assert.Equal(t, "2025-03-02", returnLeg.Data)
	assert.Equal(t, "Pendente", returnLeg.StatusPagamento)
}

func TestTripService_DeleteOutboundRemovesReturnLeg(t *testing.T) {
	service, st := newTripFixture()

	response, err := service.CreateTrip(&models.CreateTripRequest{
		Destino:   "Sorocaba",
		Data:      "2025-03-01",
		Valor:     400,
		DataVolta: "2025-03-03",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTrip(response.TripID))

	records, _ := st.List(store.TripsCollection)
	assert.Empty(t, records)

	// No record may still reference the deleted outbound
	orphans, _ := st.Query(store.TripsCollection, map[string]interface{}{
		"idaTripId": response.TripID,
	})
	assert.Empty(t, orphans)
}

func TestTripService_DeleteReturnLegClearsParent(t *testing.T) {
	service, st := newTripFixture()

	response, err := service.CreateTrip(&models.CreateTripRequest{
		Destino:   "Jundiaí",
		Data:      "2025-03-01",
		Valor:     250,
		DataVolta: "2025-03-02",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTrip(response.ReturnTripID))

	records, _ := st.List(store.TripsCollection)
	require.Len(t, records, 1)
	assert.Equal(t, false, records[0].Data["temVolta"])
	// dataVolta must be gone entirely, not nulled
	_, present := records[0].Data["dataVolta"]
	assert.False(t, present)
}

func TestTripService_TurnOffReturnDeletesDataVoltaField(t *testing.T) {
	service, st := newTripFixture()

	response, err := service.CreateTrip(&models.CreateTripRequest{
		Destino:   "Guarujá",
		Data:      "2025-03-01",
		Valor:     600,
		DataVolta: "2025-03-04",
	})
	require.NoError(t, err)

	err = service.UpdateTrip(&models.UpdateTripRequest{
		ID:       response.TripID,
		TemVolta: boolPtr(false),
	})
	require.NoError(t, err)

	records, _ := st.Query(store.TripsCollection, map[string]interface{}{"destino": "Guarujá"})
	require.Len(t, records, 1)
	_, present := records[0].Data["dataVolta"]
	assert.False(t, present)
	assert.Equal(t, false, records[0].Data["temVolta"])

	// The return leg stays until it is deleted explicitly
	legs, _ := st.Query(store.TripsCollection, map[string]interface{}{"isReturnTrip": true})
	assert.Len(t, legs, 1)
}

func TestTripService_EnableReturnOnExistingTrip(t *testing.T) {
	service, _ := newTripFixture()

	response, err := service.CreateTrip(&models.CreateTripRequest{
		Destino: "Campinas",
		Data:    "2025-03-01",
		Valor:   350,
	})
	require.NoError(t, err)

	err = service.UpdateTrip(&models.UpdateTripRequest{
		ID:        response.TripID,
		TemVolta:  boolPtr(true),
		DataVolta: strPtr("2025-03-05"),
	})
	require.NoError(t, err)

	trips, _ := service.ListTrips()
	require.Len(t, trips, 2)

	var outbound, returnLeg models.Trip
	for _, trip := range trips {
		if trip.IsReturnTrip {
			returnLeg = trip
		} else {
			outbound = trip
		}
	}
	assert.Equal(t, outbound.ID, outbound.IdaTripID)
	assert.True(t, outbound.TemVolta)
	assert.Equal(t, "Volta de Campinas", returnLeg.Destino)
	assert.Equal(t, "2025-03-05", returnLeg.Data)
}

func TestTripService_AtMostOneReturnLegPerOutbound(t *testing.T) {
	service, st := newTripFixture()

	response, err := service.CreateTrip(&models.CreateTripRequest{
		Destino:   "Santos",
		Data:      "2025-03-01",
		Valor:     500,
		DataVolta: "2025-03-02",
	})
	require.NoError(t, err)

	// Re-enabling temVolta must not create a second leg
	err = service.UpdateTrip(&models.UpdateTripRequest{
		ID:        response.TripID,
		TemVolta:  boolPtr(true),
		DataVolta: strPtr("2025-03-06"),
	})
	require.NoError(t, err)

	legs, _ := st.Query(store.TripsCollection, map[string]interface{}{"isReturnTrip": true})
	assert.Len(t, legs, 1)
}

func TestTripService_TogglePayment(t *testing.T) {
	service, _ := newTripFixture()

	response, _ := service.CreateTrip(&models.CreateTripRequest{
		Destino: "Campinas",
		Data:    "2025-03-01",
		Valor:   350,
	})

	require.NoError(t, service.TogglePayment(response.TripID))
	trips, _ := service.ListTrips()
	assert.Equal(t, "Pago", trips[0].StatusPagamento)

	require.NoError(t, service.TogglePayment(response.TripID))
	trips, _ = service.ListTrips()
	assert.Equal(t, "Pendente", trips[0].StatusPagamento)
}

func TestTripService_ArchivePaidTrips(t *testing.T) {
	service, _ := newTripFixture()

	paid, _ := service.CreateTrip(&models.CreateTripRequest{Destino: "A", Data: "2025-03-01", Valor: 100})
	service.CreateTrip(&models.CreateTripRequest{Destino: "B", Data: "2025-03-02", Valor: 200})
	require.NoError(t, service.TogglePayment(paid.TripID))

	require.NoError(t, service.ArchivePaidTrips())

	trips, _ := service.ListTrips()
	statuses := map[string]string{}
	for _, trip := range trips {
		statuses[trip.Destino] = trip.StatusPagamento
	}
	assert.Equal(t, "Arquivado", statuses["A"])
	assert.Equal(t, "Pendente", statuses["B"])

	// Toggling an archived trip is rejected
	err := service.TogglePayment(paid.TripID)
	assert.Error(t, err)
}
