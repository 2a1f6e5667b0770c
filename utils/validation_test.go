package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	value, err := ParseDecimal("450,50", "valor")
	require.NoError(t, err)
	assert.Equal(t, 450.5, value)

	value, err = ParseDecimal("300.25", "valor")
	require.NoError(t, err)
	assert.Equal(t, 300.25, value)

	_, err = ParseDecimal("abc", "valor")
	assert.Error(t, err)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2025-03-01", "data"))
	assert.NoError(t, ValidateDate("2025-03-01T10:00:00Z", "data"))
	assert.Error(t, ValidateDate("01/03/2025", "data"))
	assert.Error(t, ValidateDate("", "data"))
}

func TestValidateInstallments(t *testing.T) {
	assert.NoError(t, ValidateInstallments(1, 3))
	assert.NoError(t, ValidateInstallments(3, 3))
	assert.Error(t, ValidateInstallments(0, 3))
	assert.Error(t, ValidateInstallments(4, 3))
	assert.Error(t, ValidateInstallments(1, 0))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("Outros"))
	assert.True(t, IsValidCategory("Manutenção do Veículo"))
	assert.False(t, IsValidCategory("Transporte"))
}
