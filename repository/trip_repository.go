// repository/trip_repository.go
package repository

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/store"
	"github.com/topvan/topvan-backend/utils"
)

// TripRepository handles store operations for trips
type TripRepository struct {
	store store.Store
}

// NewTripRepository creates a new TripRepository
func NewTripRepository(s store.Store) *TripRepository {
	return &TripRepository{store: s}
}

// List returns all trips
func (r *TripRepository) List() ([]models.Trip, error) {
	records, err := r.store.List(store.TripsCollection)
	if err != nil {
		return nil, err
	}
	return decodeTrips(records)
}

// Get returns a single trip by id
func (r *TripRepository) Get(id string) (*models.Trip, error) {
	trips, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range trips {
		if trips[i].ID == id {
			return &trips[i], nil
		}
	}
	return nil, store.ErrNotFound
}

// Create stores a new trip and returns its id
func (r *TripRepository) Create(trip models.Trip) (string, error) {
	doc, err := toDoc(trip)
	if err != nil {
		return "", err
	}
	return r.store.Add(store.TripsCollection, doc)
}

// Update applies a partial patch to a trip
func (r *TripRepository) Update(id string, update store.Update) error {
	return r.store.Patch(store.TripsCollection, id, update)
}

// Delete removes a trip
func (r *TripRepository) Delete(id string) error {
	return r.store.Delete(store.TripsCollection, id)
}

// FindReturnLeg returns the return trip paired with the given outbound trip,
// or nil when none exists. At most one return leg exists per outbound.
func (r *TripRepository) FindReturnLeg(outboundID string) (*models.Trip, error) {
	records, err := r.store.Query(store.TripsCollection, map[string]interface{}{
		"idaTripId":    outboundID,
		"isReturnTrip": true,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var trip models.Trip
	if err := fromRecord(records[0], &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListByStatus returns trips with the given payment status
func (r *TripRepository) ListByStatus(status string) ([]models.Trip, error) {
	records, err := r.store.Query(store.TripsCollection, map[string]interface{}{
		"statusPagamento": status,
	})
	if err != nil {
		return nil, err
	}
	return decodeTrips(records)
}

// ArchivePaidTrips flips every Pago trip to Arquivado in one batched write.
// Archiving hides paid trips from active views without deleting history.
func (r *TripRepository) ArchivePaidTrips() error {
	records, err := r.store.Query(store.TripsCollection, map[string]interface{}{
		"statusPagamento": utils.StatusPago,
	})
	if err != nil {
		return err
	}

	ops := make([]store.WriteOp, 0, len(records))
	for _, rec := range records {
		ops = append(ops, store.WriteOp{
			Collection: store.TripsCollection,
			ID:         rec.ID,
			Kind:       store.OpPatch,
			Patch: store.Update{
				Set: map[string]interface{}{"statusPagamento": utils.StatusArquivado},
			},
		})
	}
	if len(ops) == 0 {
		return nil
	}
	return r.store.Batch(ops)
}

// DeleteAll removes every trip in one batched write. Only used when the
// monthly reset is configured to include trips.
func (r *TripRepository) DeleteAll() error {
	records, err := r.store.List(store.TripsCollection)
	if err != nil {
		return err
	}

	ops := make([]store.WriteOp, 0, len(records))
	for _, rec := range records {
		ops = append(ops, store.WriteOp{
			Collection: store.TripsCollection,
			ID:         rec.ID,
			Kind:       store.OpDelete,
		})
	}
	if len(ops) == 0 {
		return nil
	}
	return r.store.Batch(ops)
}

func decodeTrips(records []store.Record) ([]models.Trip, error) {
	trips := make([]models.Trip, 0, len(records))
	for _, rec := range records {
		var trip models.Trip
		if err := fromRecord(rec, &trip); err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, nil
}
