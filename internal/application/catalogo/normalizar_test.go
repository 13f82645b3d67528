package catalogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarTermino(t *testing.T) {
	casos := map[string]string{
		"Huánuco":      "huanuco",
		"HUÁNUCO":      "huanuco",
		"  Trujillo  ": "trujillo",
		"San  Martín":  "san martin",
		"CHICLAYO":     "chiclayo",
		"Cajamarca":    "cajamarca",
		"":             "",
		"  ":           "",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, normalizarTermino(entrada), "entrada %q", entrada)
	}
}

func TestMismoTermino(t *testing.T) {
	assert.True(t, mismoTermino("Huánuco", "huanuco"))
	assert.True(t, mismoTermino("TRUJILLO", "  trujillo "))
	assert.True(t, mismoTermino("San Martín", "san  martin"))
	assert.False(t, mismoTermino("Lima", "Piura"))
	assert.False(t, mismoTermino("Trujillo", ""))
}
