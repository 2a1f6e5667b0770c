// handlers/excel_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportMonthlyReport streams the monthly report workbook
func ExportMonthlyReport(c *gin.Context) {
	excelFile, filename, err := handlerServices.ExcelService.ExportMonthlyReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report: " + err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
