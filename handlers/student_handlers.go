// handlers/student_handlers.go
package handlers

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListStudents returns all students
func ListStudents(c *gin.Context) {
	students, err := handlerServices.StudentService.ListStudents()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, students)
}

// CreateStudent handles the creation of a new student
func CreateStudent(c *gin.Context) {
	var request models.CreateStudentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	id, err := handlerServices.StudentService.CreateStudent(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, models.CreateResponse{ID: id})
}

// UpdateStudent applies a partial update to a student
func UpdateStudent(c *gin.Context) {
	var request models.UpdateStudentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.StudentService.UpdateStudent(&request); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"updated": true})
}

// RemoveStudent deletes a student
func RemoveStudent(c *gin.Context) {
	var request models.IDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.StudentService.DeleteStudent(request.ID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// ToggleStudentPayment flips a student between Pago and Pendente
func ToggleStudentPayment(c *gin.Context) {
	var request models.IDRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.StudentService.TogglePayment(request.ID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"toggled": true})
}

// ResetStudentPayments forces every student back to Pendente
func ResetStudentPayments(c *gin.Context) {
	if err := handlerServices.StudentService.ResetAllPayments(); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"reset": true})
}
