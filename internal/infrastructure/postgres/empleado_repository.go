package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación del puerto EmpleadoRepository sobre PostgreSQL.
type EmpleadoRepo struct {
	db Querier
}

// NewEmpleadoRepository construye el adaptador; db puede ser el pool o una tx.
func NewEmpleadoRepository(db Querier) *EmpleadoRepo {
	return &EmpleadoRepo{db: db}
}

// ExisteEmail indica si ya hay un empleado con ese email.
func (r *EmpleadoRepo) ExisteEmail(ctx context.Context, email string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM empleado WHERE email = $1)`, email).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists empleado email: %w", err)
	}
	return existe, nil
}

// CrearContrato inserta el contrato inicial y devuelve su código.
func (r *EmpleadoRepo) CrearContrato(ctx context.Context, sueldo decimal.Decimal, turnoCodigo int64) (int64, error) {
	query := `
		INSERT INTO contrato (fecha_inicio, sueldo, turno_codigo)
		VALUES (NOW(), $1, $2)
		RETURNING codigo`
	var codigo int64
	if err := r.db.QueryRow(ctx, query, sueldo, turnoCodigo).Scan(&codigo); err != nil {
		return 0, fmt.Errorf("insert contrato: %w", err)
	}
	return codigo, nil
}

// Crear inserta la fila empleado sobre la persona ya creada.
func (r *EmpleadoRepo) Crear(ctx context.Context, personaCodigo int64, direccion, telefono, email string, contratoCodigo, cargoCodigo int64) error {
	query := `
		INSERT INTO empleado (codigo, direccion, telefono, email, contrato_codigo, cargo_codigo)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, personaCodigo, direccion, telefono, email, contratoCodigo, cargoCodigo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailEmpleado
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}
