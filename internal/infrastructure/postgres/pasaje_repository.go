package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

var _ repository.PasajeRepository = (*PasajeRepo)(nil)

// PasajeRepo implementación del puerto PasajeRepository sobre PostgreSQL.
type PasajeRepo struct {
	db Querier
}

// NewPasajeRepository construye el adaptador; db puede ser el pool o una tx.
func NewPasajeRepository(db Querier) *PasajeRepo {
	return &PasajeRepo{db: db}
}

// AsientosOcupados devuelve los números de asiento con pasaje Vendido.
func (r *PasajeRepo) AsientosOcupados(ctx context.Context, viajeCodigo int64) ([]int, error) {
	query := `
		SELECT asiento
		FROM pasaje
		WHERE viaje_codigo = $1 AND estado = 'Vendido'
		ORDER BY asiento`
	rows, err := r.db.Query(ctx, query, viajeCodigo)
	if err != nil {
		return nil, fmt.Errorf("list asientos ocupados: %w", err)
	}
	defer rows.Close()
	var asientos []int
	for rows.Next() {
		var a int
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan asiento: %w", err)
		}
		asientos = append(asientos, a)
	}
	return asientos, rows.Err()
}

// ExisteVendido indica si ya hay un pasaje Vendido para (viaje, asiento).
func (r *PasajeRepo) ExisteVendido(ctx context.Context, viajeCodigo int64, asiento int) (bool, error) {
	var existe bool
	query := `SELECT EXISTS(SELECT 1 FROM pasaje WHERE viaje_codigo = $1 AND asiento = $2 AND estado = 'Vendido')`
	if err := r.db.QueryRow(ctx, query, viajeCodigo, asiento).Scan(&existe); err != nil {
		return false, fmt.Errorf("exists pasaje vendido: %w", err)
	}
	return existe, nil
}

// Crear inserta el pasaje y asigna el código generado. El índice único
// parcial (viaje_codigo, asiento) WHERE estado = 'Vendido' cierra la
// carrera check-then-insert: si otra transacción vendió el asiento primero,
// el 23505 se traduce a AsientoOcupadoError.
func (r *PasajeRepo) Crear(ctx context.Context, p *entity.Pasaje) error {
	query := `
		INSERT INTO pasaje (viaje_codigo, cliente_codigo, asiento, importe_pagar, usuario_vendedor_codigo, estado, fecha_emision)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING codigo`
	err := r.db.QueryRow(ctx, query,
		p.ViajeCodigo, p.ClienteCodigo, p.Asiento, p.ImportePagar,
		p.UsuarioVendedorCodigo, p.Estado, p.FechaEmision,
	).Scan(&p.Codigo)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.AsientoOcupadoError{Asiento: p.Asiento}
		}
		return fmt.Errorf("insert pasaje: %w", err)
	}
	return nil
}

// DetallePorCodigo devuelve el detalle del pasaje con viaje y pasajero;
// (nil, nil) si no existe.
func (r *PasajeRepo) DetallePorCodigo(ctx context.Context, codigo int64) (*entity.PasajeDetalle, error) {
	query := `
		SELECT pa.codigo, pa.asiento, pa.importe_pagar, pa.estado, pa.fecha_emision,
		       r.origen, r.destino, v.fecha_hora_salida, b.placa,
		       p.nombre || ' ' || p.apellidos, p.dni
		FROM pasaje pa
		INNER JOIN viaje v ON pa.viaje_codigo = v.codigo
		INNER JOIN rutas r ON v.ruta_codigo = r.codigo
		INNER JOIN buses b ON v.bus_codigo = b.codigo
		INNER JOIN persona p ON pa.cliente_codigo = p.codigo
		WHERE pa.codigo = $1`
	var d entity.PasajeDetalle
	err := r.db.QueryRow(ctx, query, codigo).Scan(
		&d.Codigo, &d.Asiento, &d.ImportePagar, &d.Estado, &d.FechaEmision,
		&d.Origen, &d.Destino, &d.FechaHoraSalida, &d.Placa,
		&d.PasajeroNombre, &d.PasajeroDNI,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pasaje detalle: %w", err)
	}
	return &d, nil
}
