// handlers/expense_handlers.go
package handlers

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListFuelExpenses returns all fuel expenses
func ListFuelExpenses(c *gin.Context) {
	expenses, err := handlerServices.FuelService.ListFuelExpenses()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, expenses)
}

// CreateFuelExpense handles the creation of a new fuel expense
func CreateFuelExpense(c *gin.Context) {
	var request models.CreateFuelExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	id, err := handlerServices.FuelService.CreateFuelExpense(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, models.CreateResponse{ID: id})
}

// RemoveFuelExpense deletes a fuel expense
func RemoveFuelExpense(c *gin.Context) {
	var request models.IDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.FuelService.DeleteFuelExpense(request.ID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// ListGeneralExpenses returns all general expenses
func ListGeneralExpenses(c *gin.Context) {
	expenses, err := handlerServices.ExpenseService.ListGeneralExpenses()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, expenses)
}

// CreateGeneralExpense handles the creation of a new general expense,
// categorizing it when no category was supplied
func CreateGeneralExpense(c *gin.Context) {
	var request models.CreateGeneralExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	id, err := handlerServices.ExpenseService.CreateGeneralExpense(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, models.CreateResponse{ID: id})
}

// RemoveGeneralExpense deletes a general expense
func RemoveGeneralExpense(c *gin.Context) {
	var request models.IDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.ExpenseService.DeleteGeneralExpense(request.ID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// CategorizeExpense classifies a description without storing anything
func CategorizeExpense(c *gin.Context) {
	var request models.CategorizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	category, err := handlerServices.Categorizer.Categorize(request.Description)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, models.CategorizeResponse{Category: category})
}
