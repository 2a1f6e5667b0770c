// services/excel_service.go
package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExcelService exports the monthly report as a spreadsheet
type ExcelService struct {
	studentService *StudentService
	tripService    *TripService
	fuelService    *FuelService
	expenseService *ExpenseService
	summaryService *SummaryService
}

// NewExcelService creates a new Excel service
func NewExcelService(
	studentService *StudentService,
	tripService *TripService,
	fuelService *FuelService,
	expenseService *ExpenseService,
	summaryService *SummaryService,
) *ExcelService {
	return &ExcelService{
		studentService: studentService,
		tripService:    tripService,
		fuelService:    fuelService,
		expenseService: expenseService,
		summaryService: summaryService,
	}
}

// ExportMonthlyReport generates the monthly report workbook
func (s *ExcelService) ExportMonthlyReport() (*excelize.File, string, error) {
	students, err := s.studentService.ListStudents()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get students: %v", err)
	}
	trips, err := s.tripService.ListTrips()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get trips: %v", err)
	}
	fuel, err := s.fuelService.ListFuelExpenses()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get fuel expenses: %v", err)
	}
	general, err := s.expenseService.ListGeneralExpenses()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get general expenses: %v", err)
	}

	f := excelize.NewFile()

	summary := s.summaryService.BuildSummary(students, trips, fuel, general)
	if err := s.createSummarySheet(f, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	s.createStudentsSheet(f, students)
	s.createTripsSheet(f, trips)
	s.createExpensesSheet(f, general, fuel)

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Relatorio_%s.xlsx",
		utils.CleanFileName("TopVan"),
		time.Now().Format("2006-01"))

	return f, filename, nil
}

// createSummarySheet creates Sheet 1: Resumo
func (s *ExcelService) createSummarySheet(f *excelize.File, summary models.DashboardSummary) error {
	sheetName := "Resumo"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	rows := []struct {
		label string
		value float64
	}{
		{"Mensalidades Recebidas", summary.TotalReceivable},
		{"Mensalidades Pendentes", summary.TotalPending},
		{"Receita de Viagens", summary.TripRevenue},
		{"Viagens Pendentes", summary.TripPending},
		{"Combustível", summary.FuelTotal},
		{"Gastos Gerais", summary.GeneralExpensesTotal},
		{"Receita Bruta", summary.GrossRevenue},
		{"Lucro Líquido", summary.NetProfit},
	}
	for i, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), row.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), row.value)
	}

	labelStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("A%d", len(rows)), labelStyle)

	// Category breakdown section
	startRow := len(rows) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", startRow), "Gastos por Categoria:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", startRow), fmt.Sprintf("A%d", startRow), labelStyle)

	var categories []string
	for category := range summary.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for i, category := range categories {
		row := startRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), summary.CategoryBreakdown[category])
	}

	f.SetColWidth(sheetName, "A", "B", 25)
	return nil
}

// createStudentsSheet creates Sheet 2: Alunos
func (s *ExcelService) createStudentsSheet(f *excelize.File, students []models.Student) {
	sheetName := "Alunos"
	f.NewSheet(sheetName)

	s.writeHeaders(f, sheetName, []string{"Nome", "Mensalidade", "Status", "Turno"})
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })
	for i, student := range students {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), student.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), student.ValorMensalidade)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), student.StatusPagamento)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), student.Turno)
	}
	f.SetColWidth(sheetName, "A", "D", 20)
}

// createTripsSheet creates Sheet 3: Viagens
func (s *ExcelService) createTripsSheet(f *excelize.File, trips []models.Trip) {
	sheetName := "Viagens"
	f.NewSheet(sheetName)

	s.writeHeaders(f, sheetName, []string{"Destino", "Data", "Valor", "Status", "Contratante"})
	sort.Slice(trips, func(i, j int) bool { return trips[i].Data > trips[j].Data })
	for i, trip := range trips {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), trip.Destino)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), trip.Data)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), trip.Valor)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), trip.StatusPagamento)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), trip.Contratante)
	}
	f.SetColWidth(sheetName, "A", "E", 20)
}

// createExpensesSheet creates Sheet 4: Gastos
func (s *ExcelService) createExpensesSheet(f *excelize.File, general []models.GeneralExpense, fuel []models.FuelExpense) {
	sheetName := "Gastos"
	f.NewSheet(sheetName)

	s.writeHeaders(f, sheetName, []string{"Descrição", "Categoria", "Pagamento", "Parcela", "Valor do Período"})
	row := 2
	for _, expense := range general {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.PaymentMethod)
		if expense.HasInstallments() {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row),
				fmt.Sprintf("%d/%d", *expense.CurrentInstallment, *expense.TotalInstallments))
		}
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), utils.Round(s.summaryService.PeriodAmount(expense)))
		row++
	}
	for _, expense := range fuel {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Combustível")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Manutenção do Veículo")
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Valor)
		row++
	}
	f.SetColWidth(sheetName, "A", "E", 20)
}

func (s *ExcelService) writeHeaders(f *excelize.File, sheetName string, headers []string) {
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)
}
