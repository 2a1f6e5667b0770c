// services/summary_service.go
package services

import (
	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"
)

// SummaryService computes the monthly dashboard figures. Every method is a
// pure function over already-fetched lists: no store access, no mutation of
// the inputs, identical output for identical input.
type SummaryService struct{}

// NewSummaryService creates a new summary service
func NewSummaryService() *SummaryService {
	return &SummaryService{}
}

// TotalReceivable sums the monthly fees of students that have paid
func (s *SummaryService) TotalReceivable(students []models.Student) float64 {
	var total float64
	for _, student := range students {
		if student.StatusPagamento == utils.StatusPago {
			total += student.ValorMensalidade
		}
	}
	return total
}

// TotalPending sums the monthly fees of students that have not paid yet
func (s *SummaryService) TotalPending(students []models.Student) float64 {
	var total float64
	for _, student := range students {
		if student.StatusPagamento == utils.StatusPendente {
			total += student.ValorMensalidade
		}
	}
	return total
}

// TripRevenue sums the value of paid trips. Archived trips count in neither
// revenue nor pending.
func (s *SummaryService) TripRevenue(trips []models.Trip) float64 {
	var total float64
	for _, trip := range trips {
		if trip.StatusPagamento == utils.StatusPago {
			total += trip.Valor
		}
	}
	return total
}

// TripPending sums the value of pending trips
func (s *SummaryService) TripPending(trips []models.Trip) float64 {
	var total float64
	for _, trip := range trips {
		if trip.StatusPagamento == utils.StatusPendente {
			total += trip.Valor
		}
	}
	return total
}

// PeriodAmount is the amortized per-period cost of an expense: the total
// divided by the number of installments, or the full value for one-off
// expenses
func (s *SummaryService) PeriodAmount(expense models.GeneralExpense) float64 {
	if expense.TotalInstallments != nil && *expense.TotalInstallments > 0 {
		return expense.Valor / float64(*expense.TotalInstallments)
	}
	return expense.Valor
}

// GeneralExpensesTotal sums the per-period cost of all general expenses
func (s *SummaryService) GeneralExpensesTotal(expenses []models.GeneralExpense) float64 {
	var total float64
	for _, expense := range expenses {
		total += s.PeriodAmount(expense)
	}
	return total
}

// FuelTotal sums all fuel expenses
func (s *SummaryService) FuelTotal(expenses []models.FuelExpense) float64 {
	var total float64
	for _, expense := range expenses {
		total += expense.Valor
	}
	return total
}

// CategoryBreakdown groups general expenses by category, summing per-period
// amounts. Used for the pie-chart view.
func (s *SummaryService) CategoryBreakdown(expenses []models.GeneralExpense) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, expense := range expenses {
		breakdown[expense.Category] += s.PeriodAmount(expense)
	}
	return breakdown
}

// BuildSummary assembles the full dashboard from the four entity lists.
// Empty inputs yield zeroes throughout.
func (s *SummaryService) BuildSummary(
	students []models.Student,
	trips []models.Trip,
	fuel []models.FuelExpense,
	general []models.GeneralExpense,
) models.DashboardSummary {
	receivable := s.TotalReceivable(students)
	tripRevenue := s.TripRevenue(trips)
	fuelTotal := s.FuelTotal(fuel)
	generalTotal := s.GeneralExpensesTotal(general)
	gross := receivable + tripRevenue

	breakdown := s.CategoryBreakdown(general)
	for category, value := range breakdown {
		breakdown[category] = utils.Round(value)
	}

	return models.DashboardSummary{
		TotalReceivable:      utils.Round(receivable),
		TotalPending:         utils.Round(s.TotalPending(students)),
		TripRevenue:          utils.Round(tripRevenue),
		TripPending:          utils.Round(s.TripPending(trips)),
		FuelTotal:            utils.Round(fuelTotal),
		GeneralExpensesTotal: utils.Round(generalTotal),
		GrossRevenue:         utils.Round(gross),
		NetProfit:            utils.Round(gross - (fuelTotal + generalTotal)),
		CategoryBreakdown:    breakdown,
	}
}
