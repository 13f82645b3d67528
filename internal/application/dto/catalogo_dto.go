package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RutaDTO fila del catálogo de rutas.
type RutaDTO struct {
	Codigo           int64           `json:"codigo"`
	Origen           string          `json:"origen"`
	Destino          string          `json:"destino"`
	CostoReferencial decimal.Decimal `json:"costo_referencial"`
}

// ViajeDTO viaje anotado con ruta, bus, chofer y disponibilidad calculada.
type ViajeDTO struct {
	Codigo                   int64           `json:"codigo"`
	FechaHoraSalida          time.Time       `json:"fecha_hora_salida"`
	FechaHoraLlegadaEstimada time.Time       `json:"fecha_hora_llegada_estimada"`
	Estado                   string          `json:"estado"`
	Origen                   string          `json:"origen"`
	Destino                  string          `json:"destino"`
	CostoReferencial         decimal.Decimal `json:"costo_referencial"`
	Placa                    string          `json:"placa"`
	Fabricante               string          `json:"fabricante"`
	NumAsientos              int             `json:"num_asientos"`
	ChoferNombre             string          `json:"chofer_nombre"`
	AsientosDisponibles      int             `json:"asientos_disponibles"`
}

// BusDTO fila del listado de flota.
type BusDTO struct {
	Codigo      int64  `json:"codigo"`
	Placa       string `json:"placa"`
	Fabricante  string `json:"fabricante"`
	NumAsientos int    `json:"num_asientos"`
	Estado      string `json:"estado"`
}
