package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

var _ repository.EstadisticasRepository = (*EstadisticasRepo)(nil)

// EstadisticasRepo consultas de solo lectura del dashboard.
type EstadisticasRepo struct {
	pool *pgxpool.Pool
}

// NewEstadisticasRepository construye el adaptador de estadísticas.
func NewEstadisticasRepository(pool *pgxpool.Pool) *EstadisticasRepo {
	return &EstadisticasRepo{pool: pool}
}

// VentasEnRango cuenta los pasajes Vendido emitidos en el rango y suma sus
// importes.
func (r *EstadisticasRepo) VentasEnRango(ctx context.Context, desde, hasta time.Time) (int64, decimal.Decimal, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(importe_pagar), 0)
		FROM pasaje
		WHERE fecha_emision BETWEEN $1 AND $2 AND estado = $3`
	var pasajes int64
	var ingresos decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, desde, hasta, entity.PasajeVendido).Scan(&pasajes, &ingresos); err != nil {
		return 0, decimal.Zero, fmt.Errorf("ventas en rango: %w", err)
	}
	return pasajes, ingresos, nil
}

// BusesOperativos cuenta la flota en estado Operativo.
func (r *EstadisticasRepo) BusesOperativos(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM buses WHERE estado = $1`, entity.BusOperativo).Scan(&total); err != nil {
		return 0, fmt.Errorf("buses operativos: %w", err)
	}
	return total, nil
}

// ViajesProgramadosEnRango cuenta los viajes Programado que salen en el rango.
func (r *EstadisticasRepo) ViajesProgramadosEnRango(ctx context.Context, desde, hasta time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM viaje
		WHERE fecha_hora_salida BETWEEN $1 AND $2 AND estado = $3`
	var total int64
	if err := r.pool.QueryRow(ctx, query, desde, hasta, entity.ViajeProgramado).Scan(&total); err != nil {
		return 0, fmt.Errorf("viajes programados: %w", err)
	}
	return total, nil
}

// RutasPopulares devuelve el top de rutas por pasajes Vendido, con los
// ingresos acumulados de cada una.
func (r *EstadisticasRepo) RutasPopulares(ctx context.Context, limite int) ([]repository.RutaPopular, error) {
	const query = `
		SELECT r.origen,
		       r.destino,
		       COUNT(pa.codigo) AS total_pasajes,
		       COALESCE(SUM(pa.importe_pagar), 0) AS total_ingresos
		FROM rutas r
		INNER JOIN viaje v ON r.codigo = v.ruta_codigo
		INNER JOIN pasaje pa ON v.codigo = pa.viaje_codigo
		WHERE pa.estado = $1
		GROUP BY r.codigo, r.origen, r.destino
		ORDER BY total_pasajes DESC
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, entity.PasajeVendido, limite)
	if err != nil {
		return nil, fmt.Errorf("rutas populares: %w", err)
	}
	defer rows.Close()
	var list []repository.RutaPopular
	for rows.Next() {
		var rp repository.RutaPopular
		if err := rows.Scan(&rp.Origen, &rp.Destino, &rp.TotalPasajes, &rp.TotalIngresos); err != nil {
			return nil, fmt.Errorf("scan ruta popular: %w", err)
		}
		list = append(list, rp)
	}
	return list, rows.Err()
}
