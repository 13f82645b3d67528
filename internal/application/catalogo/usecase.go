// Package catalogo expone las lecturas públicas (rutas, búsqueda de viajes,
// asientos ocupados) y los listados administrativos de viajes y flota.
package catalogo

import (
	"context"
	"time"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

// CatalogoUseCase lecturas del catálogo sobre los puertos de rutas, viajes,
// buses y pasajes.
type CatalogoUseCase struct {
	rutaRepo   repository.RutaRepository
	viajeRepo  repository.ViajeRepository
	busRepo    repository.BusRepository
	pasajeRepo repository.PasajeRepository
}

// NewCatalogoUseCase construye el caso de uso del catálogo.
func NewCatalogoUseCase(
	rutaRepo repository.RutaRepository,
	viajeRepo repository.ViajeRepository,
	busRepo repository.BusRepository,
	pasajeRepo repository.PasajeRepository,
) *CatalogoUseCase {
	return &CatalogoUseCase{rutaRepo: rutaRepo, viajeRepo: viajeRepo, busRepo: busRepo, pasajeRepo: pasajeRepo}
}

// ListarRutas devuelve todas las rutas ordenadas por origen y destino.
func (uc *CatalogoUseCase) ListarRutas(ctx context.Context) ([]dto.RutaDTO, error) {
	rutas, err := uc.rutaRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RutaDTO, 0, len(rutas))
	for _, r := range rutas {
		out = append(out, dto.RutaDTO{
			Codigo:           r.Codigo,
			Origen:           r.Origen,
			Destino:          r.Destino,
			CostoReferencial: r.CostoReferencial,
		})
	}
	return out, nil
}

// BuscarViajes devuelve los viajes Programado de la fecha entre origen y
// destino, con disponibilidad calculada. El repositorio filtra por fecha y
// estado (indexable); el par origen/destino se compara aquí sin tildes ni
// mayúsculas, para tolerar las grafías mixtas del frontend.
func (uc *CatalogoUseCase) BuscarViajes(ctx context.Context, origen, destino string, fecha time.Time) ([]dto.ViajeDTO, error) {
	viajes, err := uc.viajeRepo.BuscarPorFecha(ctx, fecha, entity.ViajeProgramado)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ViajeDTO, 0, len(viajes))
	for _, v := range viajes {
		if !mismoTermino(v.Origen, origen) || !mismoTermino(v.Destino, destino) {
			continue
		}
		out = append(out, toViajeDTO(v))
	}
	return out, nil
}

// AsientosOcupados devuelve los números de asiento con pasaje Vendido del
// viaje. Siempre devuelve slice (vacío si no hay ninguno), nunca nil: el
// frontend lo consume directo para pintar el mapa de asientos.
func (uc *CatalogoUseCase) AsientosOcupados(ctx context.Context, viajeCodigo int64) ([]int, error) {
	asientos, err := uc.pasajeRepo.AsientosOcupados(ctx, viajeCodigo)
	if err != nil {
		return nil, err
	}
	if asientos == nil {
		asientos = []int{}
	}
	return asientos, nil
}

// ListarViajesAdmin lista viajes con filtros opcionales de fecha y estado.
func (uc *CatalogoUseCase) ListarViajesAdmin(ctx context.Context, fecha *time.Time, estado *string) ([]dto.ViajeDTO, error) {
	viajes, err := uc.viajeRepo.ListarAdmin(ctx, fecha, estado)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ViajeDTO, 0, len(viajes))
	for _, v := range viajes {
		out = append(out, toViajeDTO(v))
	}
	return out, nil
}

// ListarBuses devuelve la flota completa ordenada por placa.
func (uc *CatalogoUseCase) ListarBuses(ctx context.Context) ([]dto.BusDTO, error) {
	buses, err := uc.busRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BusDTO, 0, len(buses))
	for _, b := range buses {
		out = append(out, dto.BusDTO{
			Codigo:      b.Codigo,
			Placa:       b.Placa,
			Fabricante:  b.Fabricante,
			NumAsientos: b.NumAsientos,
			Estado:      b.Estado,
		})
	}
	return out, nil
}

func toViajeDTO(v entity.Viaje) dto.ViajeDTO {
	return dto.ViajeDTO{
		Codigo:                   v.Codigo,
		FechaHoraSalida:          v.FechaHoraSalida,
		FechaHoraLlegadaEstimada: v.FechaHoraLlegadaEstimada,
		Estado:                   v.Estado,
		Origen:                   v.Origen,
		Destino:                  v.Destino,
		CostoReferencial:         v.CostoReferencial,
		Placa:                    v.Placa,
		Fabricante:               v.Fabricante,
		NumAsientos:              v.NumAsientos,
		ChoferNombre:             v.ChoferNombre,
		AsientosDisponibles:      v.AsientosDisponibles,
	}
}
