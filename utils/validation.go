package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateDate checks that a date string is an ISO date or RFC 3339 timestamp
func ValidateDate(value, fieldName string) error {
	if err := ValidateRequired(value, fieldName); err != nil {
		return err
	}
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err == nil {
		return nil
	}
	return NewValidationError(fmt.Sprintf("%s must be an ISO date", fieldName))
}

// ParseDecimal parses a user-supplied decimal amount, accepting a comma as
// the decimal separator (Brazilian input style)
func ParseDecimal(value, fieldName string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	parsed, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, NewValidationError(fmt.Sprintf("%s is not a valid decimal", fieldName))
	}
	return parsed, nil
}

// ValidateInstallments checks the installment invariant on a general expense:
// both fields present together and 1 <= current <= total
func ValidateInstallments(current, total int) error {
	if total < 1 {
		return NewValidationError("total installments must be at least 1")
	}
	if current < 1 || current > total {
		return NewValidationError("current installment must be between 1 and total installments")
	}
	return nil
}
