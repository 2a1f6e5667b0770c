// handlers/trip_handlers.go
package handlers

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListTrips returns all trips
func ListTrips(c *gin.Context) {
	trips, err := handlerServices.TripService.ListTrips()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, trips)
}

// CreateTrip handles the creation of a new trip, with its return leg when a
// return date is supplied
func CreateTrip(c *gin.Context) {
	var request models.CreateTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	response, err := handlerServices.TripService.CreateTrip(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, response)
}

// UpdateTrip applies a partial update to a trip
func UpdateTrip(c *gin.Context) {
	var request models.UpdateTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.TripService.UpdateTrip(&request); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"updated": true})
}

// RemoveTrip deletes a trip, keeping its pair consistent
func RemoveTrip(c *gin.Context) {
	var request models.IDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.TripService.DeleteTrip(request.ID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// ToggleTripPayment flips a trip between Pendente and Pago
func ToggleTripPayment(c *gin.Context) {
	var request models.IDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.TripService.TogglePayment(request.ID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"toggled": true})
}

// ArchivePaidTrips flips every paid trip to Arquivado
func ArchivePaidTrips(c *gin.Context) {
	if err := handlerServices.TripService.ArchivePaidTrips(); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"archived": true})
}
