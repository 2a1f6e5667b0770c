// services/trip_service.go
package services

import (
	"errors"

	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/repository"
	"github.com/topvan/topvan-backend/store"
	"github.com/topvan/topvan-backend/utils"
)

// TripService handles trip business logic, including the outbound/return
// pairing rules
type TripService struct {
	repo *repository.TripRepository
}

// NewTripService creates a new trip service
func NewTripService(repo *repository.TripRepository) *TripService {
	return &TripService{repo: repo}
}

// ListTrips returns all trips
func (s *TripService) ListTrips() ([]models.Trip, error) {
	trips, err := s.repo.List()
	if err != nil {
		return nil, storeError("Trip", err)
	}
	return trips, nil
}

// CreateTrip validates and stores a new trip. New trips always start
// Pendente. When a return date is supplied the paired return leg is created
// in a second phase, since the outbound id is not known until the first
// write completes.
func (s *TripService) CreateTrip(request *models.CreateTripRequest) (*models.CreateTripResponse, error) {
	if err := utils.ValidateRequired(request.Destino, "destino"); err != nil {
		return nil, err
	}
	if err := utils.ValidateDate(request.Data, "data"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(request.Valor, "valor"); err != nil {
		return nil, err
	}
	hasReturn := request.DataVolta != ""
	if hasReturn {
		if err := utils.ValidateDate(request.DataVolta, "dataVolta"); err != nil {
			return nil, err
		}
	}

	outbound := models.Trip{
		Destino:         request.Destino,
		Contratante:     request.Contratante,
		Data:            request.Data,
		Valor:           request.Valor,
		StatusPagamento: utils.StatusPendente,
		DataVolta:       request.DataVolta,
		TemVolta:        hasReturn,
	}

	outboundID, err := s.repo.Create(outbound)
	if err != nil {
		return nil, storeError("Trip", err)
	}

	response := &models.CreateTripResponse{TripID: outboundID}
	if hasReturn {
		returnID, err := s.createReturnLeg(outboundID, request.Destino, request.DataVolta)
		if err != nil {
			return nil, err
		}
		response.ReturnTripID = returnID
	}
	return response, nil
}

// UpdateTrip applies a partial patch. Flipping temVolta off deletes the
// dataVolta field outright so that it is absent afterward, not empty; the
// return leg itself is only removed by an explicit delete. Flipping temVolta
// on with a return date creates the return leg if none exists yet.
func (s *TripService) UpdateTrip(request *models.UpdateTripRequest) error {
	trip, err := s.repo.Get(request.ID)
	if err != nil {
		return storeError("Trip", err)
	}

	update := store.Update{Set: map[string]interface{}{}}
	if request.Destino != nil {
		if err := utils.ValidateRequired(*request.Destino, "destino"); err != nil {
			return err
		}
		update.Set["destino"] = *request.Destino
	}
	if request.Contratante != nil {
		update.Set["contratante"] = *request.Contratante
	}
	if request.Data != nil {
		if err := utils.ValidateDate(*request.Data, "data"); err != nil {
			return err
		}
		update.Set["data"] = *request.Data
	}
	if request.Valor != nil {
		if err := utils.ValidateNonNegative(*request.Valor, "valor"); err != nil {
			return err
		}
		update.Set["valor"] = *request.Valor
	}
	if request.StatusPagamento != nil {
		if !isTripStatus(*request.StatusPagamento) {
			return utils.NewValidationError("statusPagamento must be Pago, Pendente or Arquivado")
		}
		update.Set["statusPagamento"] = *request.StatusPagamento
	}
	if request.DataVolta != nil {
		if err := utils.ValidateDate(*request.DataVolta, "dataVolta"); err != nil {
			return err
		}
		update.Set["dataVolta"] = *request.DataVolta
	}

	var needsReturnLeg bool
	if request.TemVolta != nil {
		update.Set["temVolta"] = *request.TemVolta
		if !*request.TemVolta {
			update.Delete = append(update.Delete, "dataVolta")
			delete(update.Set, "dataVolta")
		} else if !trip.TemVolta {
			if request.DataVolta == nil {
				return utils.NewValidationError("dataVolta is required when enabling a return leg")
			}
			needsReturnLeg = true
		}
	}
	if len(update.Set) == 0 && len(update.Delete) == 0 {
		return utils.NewValidationError("no fields to update")
	}

	if err := s.repo.Update(request.ID, update); err != nil {
		return storeError("Trip", err)
	}

	if needsReturnLeg {
		existing, err := s.repo.FindReturnLeg(request.ID)
		if err != nil {
			return storeError("Trip", err)
		}
		if existing == nil {
			destino := trip.Destino
			if request.Destino != nil {
				destino = *request.Destino
			}
			if _, err := s.createReturnLeg(request.ID, destino, *request.DataVolta); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteTrip removes a trip and keeps the pair consistent. Deleting an
// outbound leg removes its return leg first, so no phantom return leg can
// survive its parent. Deleting a return leg directly clears the parent's
// temVolta and dataVolta before the leg itself goes.
func (s *TripService) DeleteTrip(id string) error {
	trip, err := s.repo.Get(id)
	if err != nil {
		return storeError("Trip", err)
	}

	if trip.IsReturnTrip {
		if trip.IdaTripID != "" {
			err := s.repo.Update(trip.IdaTripID, store.Update{
				Set:    map[string]interface{}{"temVolta": false},
				Delete: []string{"dataVolta"},
			})
			// A missing parent is fine: the leg is then effectively orphaned
			// and only needs its own delete
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return storeError("Trip", err)
			}
		}
		return storeError("Trip", s.repo.Delete(id))
	}

	returnLeg, err := s.repo.FindReturnLeg(id)
	if err != nil {
		return storeError("Trip", err)
	}
	if returnLeg != nil {
		if err := s.repo.Delete(returnLeg.ID); err != nil {
			return storeError("Trip", err)
		}
	}
	return storeError("Trip", s.repo.Delete(id))
}

// TogglePayment flips a trip between Pendente and Pago. Archived trips only
// leave Arquivado through a manual edit.
func (s *TripService) TogglePayment(id string) error {
	trip, err := s.repo.Get(id)
	if err != nil {
		return storeError("Trip", err)
	}
	if trip.StatusPagamento == utils.StatusArquivado {
		return utils.NewValidationError("cannot toggle payment on an archived trip")
	}

	newStatus := utils.StatusPago
	if trip.StatusPagamento == utils.StatusPago {
		newStatus = utils.StatusPendente
	}
	return storeError("Trip", s.repo.Update(id, store.Update{
		Set: map[string]interface{}{"statusPagamento": newStatus},
	}))
}

// ArchivePaidTrips flips every Pago trip to Arquivado
func (s *TripService) ArchivePaidTrips() error {
	return storeError("Trip", s.repo.ArchivePaidTrips())
}

// createReturnLeg stores the return trip and back-patches the outbound's
// idaTripId to its own id, marking it as a paired outbound
func (s *TripService) createReturnLeg(outboundID, destino, dataVolta string) (string, error) {
	returnID, err := s.repo.Create(models.Trip{
		Destino:         utils.ReturnTripPrefix + destino,
		Data:            dataVolta,
		Valor:           0,
		StatusPagamento: utils.StatusPendente,
		IsReturnTrip:    true,
		IdaTripID:       outboundID,
	})
	if err != nil {
		return "", storeError("Trip", err)
	}

	err = s.repo.Update(outboundID, store.Update{
		Set: map[string]interface{}{"idaTripId": outboundID},
	})
	if err != nil {
		return "", storeError("Trip", err)
	}
	return returnID, nil
}

func isTripStatus(status string) bool {
	return status == utils.StatusPago || status == utils.StatusPendente || status == utils.StatusArquivado
}
