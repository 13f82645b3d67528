// Package analytics contiene el caso de uso del dashboard administrativo:
// ventas del día, flota operativa, viajes programados y rutas populares.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

const topRutas = 5 // número de rutas en el ranking del dashboard

// DashboardUseCase compone el resumen del día a partir del repositorio de
// estadísticas (consultas read-only, sin caché: se recalcula por llamada).
type DashboardUseCase struct {
	estadisticasRepo repository.EstadisticasRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(estadisticasRepo repository.EstadisticasRepository) *DashboardUseCase {
	return &DashboardUseCase{estadisticasRepo: estadisticasRepo}
}

// Estadisticas construye el EstadisticasDTO del día en curso.
//
// Cuatro consultas independientes en paralelo:
//  1. VentasEnRango(hoy)            → pasajeros + ingresos
//  2. BusesOperativos               → flota activa
//  3. ViajesProgramadosEnRango(hoy) → salidas del día
//  4. RutasPopulares(top 5)         → ranking por pasajes vendidos
func (uc *DashboardUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasDTO, error) {
	now := time.Now()
	hoyInicio := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hoyFin := hoyInicio.Add(24*time.Hour - time.Nanosecond)

	type ventasResult struct {
		pasajes  int64
		ingresos decimal.Decimal
		err      error
	}
	type conteoResult struct {
		total int64
		err   error
	}
	type rutasResult struct {
		rutas []repository.RutaPopular
		err   error
	}

	ventasCh := make(chan ventasResult, 1)
	busesCh := make(chan conteoResult, 1)
	viajesCh := make(chan conteoResult, 1)
	rutasCh := make(chan rutasResult, 1)

	go func() {
		pasajes, ingresos, err := uc.estadisticasRepo.VentasEnRango(ctx, hoyInicio, hoyFin)
		ventasCh <- ventasResult{pasajes, ingresos, err}
	}()
	go func() {
		total, err := uc.estadisticasRepo.BusesOperativos(ctx)
		busesCh <- conteoResult{total, err}
	}()
	go func() {
		total, err := uc.estadisticasRepo.ViajesProgramadosEnRango(ctx, hoyInicio, hoyFin)
		viajesCh <- conteoResult{total, err}
	}()
	go func() {
		rutas, err := uc.estadisticasRepo.RutasPopulares(ctx, topRutas)
		rutasCh <- rutasResult{rutas, err}
	}()

	ventas := <-ventasCh
	buses := <-busesCh
	viajes := <-viajesCh
	rutas := <-rutasCh

	if ventas.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", ventas.err)
	}
	if buses.err != nil {
		return nil, fmt.Errorf("dashboard: buses operativos: %w", buses.err)
	}
	if viajes.err != nil {
		return nil, fmt.Errorf("dashboard: viajes programados: %w", viajes.err)
	}
	if rutas.err != nil {
		return nil, fmt.Errorf("dashboard: rutas populares: %w", rutas.err)
	}

	populares := make([]dto.RutaPopularDTO, 0, len(rutas.rutas))
	for _, r := range rutas.rutas {
		populares = append(populares, dto.RutaPopularDTO{
			Origen:        r.Origen,
			Destino:       r.Destino,
			TotalPasajes:  r.TotalPasajes,
			TotalIngresos: r.TotalIngresos,
		})
	}

	return &dto.EstadisticasDTO{
		VentasHoy: dto.VentasHoyDTO{
			Pasajeros: ventas.pasajes,
			Ingresos:  ventas.ingresos.Round(2),
		},
		BusesOperativos:   buses.total,
		ViajesProgramados: viajes.total,
		RutasPopulares:    populares,
	}, nil
}
