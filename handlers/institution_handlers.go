// handlers/institution_handlers.go
package handlers

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListInstitutions returns all institutions
func ListInstitutions(c *gin.Context) {
	institutions, err := handlerServices.InstitutionService.ListInstitutions()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, institutions)
}

// CreateInstitution handles the creation of a new institution
func CreateInstitution(c *gin.Context) {
	var request models.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	id, err := handlerServices.InstitutionService.CreateInstitution(request.Name)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, models.CreateResponse{ID: id})
}

// RemoveInstitution deletes an institution
func RemoveInstitution(c *gin.Context) {
	var request models.IDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.InstitutionService.DeleteInstitution(request.ID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"deleted": true})
}
