package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
)

// RutaRepository catálogo de rutas (dato de referencia, sin paginación).
type RutaRepository interface {
	// Listar devuelve todas las rutas ordenadas por origen y destino.
	Listar(ctx context.Context) ([]entity.Ruta, error)
}

// BusRepository catálogo de la flota.
type BusRepository interface {
	// Listar devuelve todos los buses ordenados por placa.
	Listar(ctx context.Context) ([]entity.Bus, error)
}

// ViajeRepository consultas sobre viajes programados.
type ViajeRepository interface {
	// BuscarPorFecha devuelve los viajes de la fecha con el estado dado,
	// anotados con disponibilidad, ordenados por hora de salida. El filtro
	// por origen/destino se hace en el caso de uso (comparación sin tildes).
	BuscarPorFecha(ctx context.Context, fecha time.Time, estado string) ([]entity.Viaje, error)
	// ListarAdmin lista viajes con filtros opcionales de fecha y estado.
	ListarAdmin(ctx context.Context, fecha *time.Time, estado *string) ([]entity.Viaje, error)
	// CostoReferencial devuelve el costo de la ruta del viaje, o
	// (nil, nil) si el viaje no existe.
	CostoReferencial(ctx context.Context, viajeCodigo int64) (*decimal.Decimal, error)
}

// PasajeRepository persistencia y consultas de pasajes.
type PasajeRepository interface {
	// AsientosOcupados devuelve los números de asiento con pasaje Vendido.
	AsientosOcupados(ctx context.Context, viajeCodigo int64) ([]int, error)
	// ExisteVendido indica si ya hay un pasaje Vendido para (viaje, asiento).
	ExisteVendido(ctx context.Context, viajeCodigo int64, asiento int) (bool, error)
	// Crear inserta el pasaje y asigna Codigo. Si otro comprador ganó la
	// carrera por el asiento (índice único parcial), devuelve
	// *domain.AsientoOcupadoError.
	Crear(ctx context.Context, p *entity.Pasaje) error
	// DetallePorCodigo devuelve (nil, nil) si el pasaje no existe.
	DetallePorCodigo(ctx context.Context, codigo int64) (*entity.PasajeDetalle, error)
}
