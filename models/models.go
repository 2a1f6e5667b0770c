// models/models.go
package models

// Institution is a university/school a student commutes to. Students keep a
// weak reference to it by id: deleting an institution never cascades, and a
// dangling reference simply renders as "N/A" on the client.
type Institution struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Student is a recurring monthly payer
type Student struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	InstitutionID    string  `json:"institutionId"`
	ValorMensalidade float64 `json:"valorMensalidade"`
	Observacoes      string  `json:"observacoes"`
	StatusPagamento  string  `json:"statusPagamento"`
	Turno            string  `json:"turno"`
}

// Trip is a one-off revenue event. Two trips may form an outbound/return
// pair: the outbound carries idaTripId = its own id and temVolta = true, the
// return leg carries isReturnTrip = true and idaTripId pointing at the
// outbound. Return legs carry no independent revenue (valor = 0).
type Trip struct {
	ID              string  `json:"id"`
	Destino         string  `json:"destino"`
	Contratante     string  `json:"contratante,omitempty"`
	Data            string  `json:"data"`
	Valor           float64 `json:"valor"`
	StatusPagamento string  `json:"statusPagamento"`
	DataVolta       string  `json:"dataVolta,omitempty"`
	IsReturnTrip    bool    `json:"isReturnTrip,omitempty"`
	IdaTripID       string  `json:"idaTripId,omitempty"`
	TemVolta        bool    `json:"temVolta,omitempty"`
}

// FuelExpense is a single refueling record
type FuelExpense struct {
	ID     string   `json:"id"`
	Data   string   `json:"data"`
	Valor  float64  `json:"valor"`
	Litros *float64 `json:"litros,omitempty"`
}

// GeneralExpense is a categorized expense. When installment fields are set,
// Valor is the total across all installments and the per-period amount is
// Valor / TotalInstallments.
type GeneralExpense struct {
	ID                 string  `json:"id"`
	Data               string  `json:"data"`
	Valor              float64 `json:"valor"`
	Description        string  `json:"description"`
	PaymentMethod      string  `json:"paymentMethod"`
	Category           string  `json:"category"`
	CurrentInstallment *int    `json:"currentInstallment,omitempty"`
	TotalInstallments  *int    `json:"totalInstallments,omitempty"`
}

// HasInstallments reports whether the expense is paid in installments
func (e *GeneralExpense) HasInstallments() bool {
	return e.CurrentInstallment != nil && e.TotalInstallments != nil
}

// IsOutboundWithReturn reports whether the trip is an outbound leg that has a
// return leg attached
func (t *Trip) IsOutboundWithReturn() bool {
	return !t.IsReturnTrip && t.TemVolta
}
