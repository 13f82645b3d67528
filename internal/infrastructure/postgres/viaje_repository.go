package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

var _ repository.ViajeRepository = (*ViajeRepo)(nil)

// viajeSelect proyección común de viajes: ruta, bus, chofer y la
// disponibilidad calculada como capacidad menos pasajes Vendido.
const viajeSelect = `
	SELECT v.codigo,
	       v.fecha_hora_salida,
	       v.fecha_hora_llegada_estimada,
	       v.estado,
	       r.origen,
	       r.destino,
	       r.costo_referencial,
	       b.placa,
	       b.fabricante,
	       b.num_asientos,
	       p.nombre || ' ' || p.apellidos AS chofer_nombre,
	       b.num_asientos - COALESCE(ocupados.total, 0) AS asientos_disponibles
	FROM viaje v
	INNER JOIN rutas r ON v.ruta_codigo = r.codigo
	INNER JOIN buses b ON v.bus_codigo = b.codigo
	INNER JOIN chofer ch ON v.chofer_codigo = ch.codigo
	INNER JOIN empleado e ON ch.codigo = e.codigo
	INNER JOIN persona p ON e.codigo = p.codigo
	LEFT JOIN (
		SELECT viaje_codigo, COUNT(*) AS total
		FROM pasaje
		WHERE estado = 'Vendido'
		GROUP BY viaje_codigo
	) ocupados ON v.codigo = ocupados.viaje_codigo`

// ViajeRepo implementación del puerto ViajeRepository sobre PostgreSQL.
type ViajeRepo struct {
	db Querier
}

// NewViajeRepository construye el adaptador; db puede ser el pool o una tx.
func NewViajeRepository(db Querier) *ViajeRepo {
	return &ViajeRepo{db: db}
}

// BuscarPorFecha devuelve los viajes de la fecha con el estado dado,
// ordenados por hora de salida.
func (r *ViajeRepo) BuscarPorFecha(ctx context.Context, fecha time.Time, estado string) ([]entity.Viaje, error) {
	query := viajeSelect + `
	WHERE v.fecha_hora_salida::date = $1::date AND v.estado = $2
	ORDER BY v.fecha_hora_salida`
	rows, err := r.db.Query(ctx, query, fecha, estado)
	if err != nil {
		return nil, fmt.Errorf("search viajes: %w", err)
	}
	defer rows.Close()
	return scanViajes(rows)
}

// ListarAdmin lista viajes con filtros opcionales de fecha y estado.
func (r *ViajeRepo) ListarAdmin(ctx context.Context, fecha *time.Time, estado *string) ([]entity.Viaje, error) {
	query := viajeSelect + `
	WHERE ($1::date IS NULL OR v.fecha_hora_salida::date = $1::date)
	  AND ($2::text IS NULL OR v.estado = $2)
	ORDER BY v.fecha_hora_salida`
	rows, err := r.db.Query(ctx, query, fecha, estado)
	if err != nil {
		return nil, fmt.Errorf("list viajes admin: %w", err)
	}
	defer rows.Close()
	return scanViajes(rows)
}

// CostoReferencial devuelve el costo de la ruta del viaje; (nil, nil) si el
// viaje no existe.
func (r *ViajeRepo) CostoReferencial(ctx context.Context, viajeCodigo int64) (*decimal.Decimal, error) {
	query := `
		SELECT r.costo_referencial
		FROM viaje v
		INNER JOIN rutas r ON v.ruta_codigo = r.codigo
		WHERE v.codigo = $1`
	var costo decimal.Decimal
	err := r.db.QueryRow(ctx, query, viajeCodigo).Scan(&costo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get costo referencial: %w", err)
	}
	return &costo, nil
}

func scanViajes(rows pgx.Rows) ([]entity.Viaje, error) {
	var list []entity.Viaje
	for rows.Next() {
		var v entity.Viaje
		if err := rows.Scan(
			&v.Codigo, &v.FechaHoraSalida, &v.FechaHoraLlegadaEstimada, &v.Estado,
			&v.Origen, &v.Destino, &v.CostoReferencial,
			&v.Placa, &v.Fabricante, &v.NumAsientos,
			&v.ChoferNombre, &v.AsientosDisponibles,
		); err != nil {
			return nil, fmt.Errorf("scan viaje: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
