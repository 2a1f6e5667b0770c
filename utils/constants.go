package utils

const (
	// Payment statuses
	StatusPago      = "Pago"
	StatusPendente  = "Pendente"
	StatusArquivado = "Arquivado"

	// Shifts
	TurnoManha = "Manhã"
	TurnoNoite = "Noite"

	// Return-leg destination prefix
	ReturnTripPrefix = "Volta de "

	// HTTP status messages
	ErrInvalidRequest       = "Invalid request"
	ErrStudentNotFound      = "Student not found"
	ErrTripNotFound         = "Trip not found"
	ErrInstitutionNotFound  = "Institution not found"
	ErrExpenseNotFound      = "Expense not found"
	ErrFailedToStore        = "Failed to store data"
	ErrFailedToRetrieve     = "Failed to retrieve data"
	ErrInstitutionExists    = "Institution already exists"
	ErrDescriptionRequired  = "Description is required"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)

// ExpenseCategories is the closed set of labels the categorizer may assign.
// "Outros" is the fallback when nothing else fits.
var ExpenseCategories = []string{
	"Alimentação",
	"Manutenção do Veículo",
	"Saúde",
	"Lazer",
	"Pessoal",
	"Educação",
	"Outros",
}

// CategoryFallback is assigned when the categorizer returns an unknown label
const CategoryFallback = "Outros"

// PaymentMethods accepted on general expenses. PIX purchases never carry
// installments; card purchases may.
var PaymentMethods = []string{
	"PIX",
	"Cartão Banco Brasil",
	"Cartão Nubank",
	"Cartão Naza",
	"Outro",
}

const PaymentMethodPix = "PIX"

// IsValidCategory reports whether label is one of the seven fixed categories
func IsValidCategory(label string) bool {
	for _, c := range ExpenseCategories {
		if c == label {
			return true
		}
	}
	return false
}

// IsValidPaymentMethod reports whether method is a known payment method
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
