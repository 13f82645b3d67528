package dto

import "github.com/shopspring/decimal"

// VentasHoyDTO pasajes vendidos e ingresos del día.
type VentasHoyDTO struct {
	Pasajeros int64           `json:"pasajeros"`
	Ingresos  decimal.Decimal `json:"ingresos"`
}

// RutaPopularDTO fila del ranking de rutas.
type RutaPopularDTO struct {
	Origen        string          `json:"origen"`
	Destino       string          `json:"destino"`
	TotalPasajes  int64           `json:"total_pasajes"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
}

// EstadisticasDTO resumen del dashboard administrativo.
type EstadisticasDTO struct {
	VentasHoy         VentasHoyDTO     `json:"ventas_hoy"`
	BusesOperativos   int64            `json:"buses_operativos"`
	ViajesProgramados int64            `json:"viajes_programados"`
	RutasPopulares    []RutaPopularDTO `json:"rutas_populares"`
}
