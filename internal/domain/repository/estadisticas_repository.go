package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RutaPopular fila del ranking de rutas por pasajes vendidos.
type RutaPopular struct {
	Origen        string
	Destino       string
	TotalPasajes  int64
	TotalIngresos decimal.Decimal
}

// EstadisticasRepository consultas read-only del dashboard.
type EstadisticasRepository interface {
	// VentasEnRango cuenta pasajes Vendido emitidos en el rango y suma sus importes.
	VentasEnRango(ctx context.Context, desde, hasta time.Time) (pasajes int64, ingresos decimal.Decimal, err error)
	// BusesOperativos cuenta la flota en estado Operativo.
	BusesOperativos(ctx context.Context) (int64, error)
	// ViajesProgramadosEnRango cuenta viajes Programado que salen en el rango.
	ViajesProgramadosEnRango(ctx context.Context, desde, hasta time.Time) (int64, error)
	// RutasPopulares devuelve el top de rutas por pasajes Vendido.
	RutasPopulares(ctx context.Context, limite int) ([]RutaPopular, error)
}
