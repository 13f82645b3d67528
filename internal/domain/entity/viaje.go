package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un viaje. Las transiciones las gestiona la
// programación de flota, fuera de esta API; aquí solo se filtra por estado.
const (
	ViajeProgramado = "Programado"
	ViajeEnCurso    = "En curso"
	ViajeCompletado = "Completado"
	ViajeCancelado  = "Cancelado"
)

// EstadoViajeValido indica si el estado pertenece al ciclo de vida conocido.
func EstadoViajeValido(estado string) bool {
	switch estado {
	case ViajeProgramado, ViajeEnCurso, ViajeCompletado, ViajeCancelado:
		return true
	}
	return false
}

// Viaje salida programada de un bus en una ruta, anotada con los joins que
// consumen la búsqueda pública y el listado admin: ruta, bus, chofer y la
// disponibilidad calculada (capacidad menos pasajes vendidos).
type Viaje struct {
	Codigo                   int64
	FechaHoraSalida          time.Time
	FechaHoraLlegadaEstimada time.Time
	Estado                   string
	Origen                   string
	Destino                  string
	CostoReferencial         decimal.Decimal
	Placa                    string
	Fabricante               string
	NumAsientos              int
	ChoferNombre             string
	AsientosDisponibles      int
}
