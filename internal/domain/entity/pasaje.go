package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pasaje. La anulación sería un cambio de estado, nunca un
// borrado de fila.
const (
	PasajeVendido = "Vendido"
)

// UsuarioVendedorSistema código del vendedor fijo con el que se emiten las
// compras hechas por el canal web.
const UsuarioVendedorSistema int64 = 1

// Pasaje boleto emitido: un asiento de un viaje vendido a un cliente.
// Invariante: por viaje, a lo sumo un pasaje Vendido por asiento; además del
// re-chequeo transaccional, lo respalda un índice único parcial en la DB.
type Pasaje struct {
	Codigo                int64
	ViajeCodigo           int64
	ClienteCodigo         int64
	Asiento               int
	ImportePagar          decimal.Decimal
	UsuarioVendedorCodigo int64
	Estado                string
	FechaEmision          time.Time
}

// PasajeDetalle proyección del pasaje con los datos del viaje y del pasajero,
// para el boleto imprimible.
type PasajeDetalle struct {
	Codigo           int64
	Asiento          int
	ImportePagar     decimal.Decimal
	Estado           string
	FechaEmision     time.Time
	Origen           string
	Destino          string
	FechaHoraSalida  time.Time
	Placa            string
	PasajeroNombre   string
	PasajeroDNI      string
}
