// models/requests.go
package models

// CreateStudentRequest request model
type CreateStudentRequest struct {
	Name             string  `json:"name" binding:"required"`
	InstitutionID    string  `json:"institutionId"`
	ValorMensalidade float64 `json:"valorMensalidade" binding:"required"`
	Observacoes      string  `json:"observacoes"`
	StatusPagamento  string  `json:"statusPagamento"`
	Turno            string  `json:"turno" binding:"required"`
}

// UpdateStudentRequest carries a partial patch: only non-nil fields are
// applied, omitted fields are left untouched
type UpdateStudentRequest struct {
	ID               string   `json:"id" binding:"required"`
	Name             *string  `json:"name"`
	InstitutionID    *string  `json:"institutionId"`
	ValorMensalidade *float64 `json:"valorMensalidade"`
	Observacoes      *string  `json:"observacoes"`
	StatusPagamento  *string  `json:"statusPagamento"`
	Turno            *string  `json:"turno"`
}

// CreateInstitutionRequest request model
type CreateInstitutionRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTripRequest request model. Supplying DataVolta creates the paired
// return leg as well.
type CreateTripRequest struct {
	Destino     string  `json:"destino" binding:"required"`
	Contratante string  `json:"contratante"`
	Data        string  `json:"data" binding:"required"`
	Valor       float64 `json:"valor"`
	DataVolta   string  `json:"dataVolta"`
}

// UpdateTripRequest carries a partial patch. Setting TemVolta to false
// removes the dataVolta field from the outbound record.
type UpdateTripRequest struct {
	ID              string   `json:"id" binding:"required"`
	Destino         *string  `json:"destino"`
	Contratante     *string  `json:"contratante"`
	Data            *string  `json:"data"`
	Valor           *float64 `json:"valor"`
	StatusPagamento *string  `json:"statusPagamento"`
	DataVolta       *string  `json:"dataVolta"`
	TemVolta        *bool    `json:"temVolta"`
}

// CreateFuelExpenseRequest request model
type CreateFuelExpenseRequest struct {
	Data   string   `json:"data" binding:"required"`
	Valor  float64  `json:"valor" binding:"required"`
	Litros *float64 `json:"litros"`
}

// CreateGeneralExpenseRequest request model. Category is optional: when
// empty the expense is categorized from its description.
type CreateGeneralExpenseRequest struct {
	Data              string  `json:"data" binding:"required"`
	Valor             float64 `json:"valor" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	PaymentMethod     string  `json:"paymentMethod" binding:"required"`
	Category          string  `json:"category"`
	TotalInstallments *int    `json:"totalInstallments"`
}

// IDRequest identifies a single document
type IDRequest struct {
	ID string `json:"id" binding:"required"`
}

// CategorizeRequest request model
type CategorizeRequest struct {
	Description string `json:"description" binding:"required"`
}

// CategorizeResponse response model
type CategorizeResponse struct {
	Category string `json:"category"`
}

// CreateResponse returns the id assigned to a new document
type CreateResponse struct {
	ID string `json:"id"`
}

// CreateTripResponse returns the ids created for a trip, including the
// return leg when one was requested
type CreateTripResponse struct {
	TripID       string `json:"tripId"`
	ReturnTripID string `json:"returnTripId,omitempty"`
}

// ResetMonthResponse reports which reset steps ran
type ResetMonthResponse struct {
	CompletedSteps []string `json:"completedSteps"`
}

// DashboardSummary is the monthly financial dashboard
type DashboardSummary struct {
	TotalReceivable      float64            `json:"totalReceivable"`
	TotalPending         float64            `json:"totalPending"`
	TripRevenue          float64            `json:"tripRevenue"`
	TripPending          float64            `json:"tripPending"`
	FuelTotal            float64            `json:"fuelTotal"`
	GeneralExpensesTotal float64            `json:"generalExpensesTotal"`
	GrossRevenue         float64            `json:"grossRevenue"`
	NetProfit            float64            `json:"netProfit"`
	CategoryBreakdown    map[string]float64 `json:"categoryBreakdown"`
}

// ClaudeResponse models the Claude API message response
type ClaudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}
