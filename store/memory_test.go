package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AddAndList(t *testing.T) {
	s := NewMemoryStore()

	id, err := s.Add("trips", map[string]interface{}{"destino": "Campinas", "valor": 350.0})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	records, err := s.List("trips")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, "Campinas", records[0].Data["destino"])
}

func TestMemoryStore_PatchAppliesOnlySuppliedFields(t *testing.T) {
	s := NewMemoryStore()
	id, _ := s.Add("students", map[string]interface{}{
		"name":            "Ana Silva",
		"statusPagamento": "Pago",
		"observacoes":     "Ponto de encontro: padaria",
	})

	err := s.Patch("students", id, Update{
		Set: map[string]interface{}{"statusPagamento": "Pendente"},
	})
	require.NoError(t, err)

	records, _ := s.List("students")
	require.Len(t, records, 1)
	assert.Equal(t, "Pendente", records[0].Data["statusPagamento"])
	// Omitted fields stay untouched
	assert.Equal(t, "Ana Silva", records[0].Data["name"])
	assert.Equal(t, "Ponto de encontro: padaria", records[0].Data["observacoes"])
}

func TestMemoryStore_FieldDeleteRemovesFieldEntirely(t *testing.T) {
	s := NewMemoryStore()
	id, _ := s.Add("trips", map[string]interface{}{
		"destino":   "Santos",
		"dataVolta": "2025-03-02",
		"temVolta":  true,
	})

	err := s.Patch("trips", id, Update{
		Set:    map[string]interface{}{"temVolta": false},
		Delete: []string{"dataVolta"},
	})
	require.NoError(t, err)

	records, _ := s.List("trips")
	require.Len(t, records, 1)
	// The field must be absent, not present with an empty value
	_, present := records[0].Data["dataVolta"]
	assert.False(t, present)
	assert.Equal(t, false, records[0].Data["temVolta"])
}

func TestMemoryStore_QueryMatchesAllFilterFields(t *testing.T) {
	s := NewMemoryStore()
	outboundID, _ := s.Add("trips", map[string]interface{}{"destino": "Campinas"})
	s.Add("trips", map[string]interface{}{
		"destino":      "Volta de Campinas",
		"isReturnTrip": true,
		"idaTripId":    outboundID,
	})
	s.Add("trips", map[string]interface{}{"destino": "Santos", "isReturnTrip": true, "idaTripId": "other"})

	records, err := s.Query("trips", map[string]interface{}{
		"idaTripId":    outboundID,
		"isReturnTrip": true,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Volta de Campinas", records[0].Data["destino"])
}

func TestMemoryStore_PatchMissingIDReturnsNotFound(t *testing.T) {
	s := NewMemoryStore()

	err := s.Patch("students", "missing", Update{Set: map[string]interface{}{"x": 1}})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Delete("students", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_BatchIsAllOrNothing(t *testing.T) {
	s := NewMemoryStore()
	id, _ := s.Add("fuelExpenses", map[string]interface{}{"valor": 200.0})

	err := s.Batch([]WriteOp{
		{Collection: "fuelExpenses", ID: id, Kind: OpDelete},
		{Collection: "fuelExpenses", ID: "missing", Kind: OpDelete},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// The valid op must not have been applied
	records, _ := s.List("fuelExpenses")
	assert.Len(t, records, 1)
}

func TestMemoryStore_ListReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	s.Add("students", map[string]interface{}{"name": "Bruno Costa"})

	records, _ := s.List("students")
	records[0].Data["name"] = "mutated"

	fresh, _ := s.List("students")
	assert.Equal(t, "Bruno Costa", fresh[0].Data["name"])
}
