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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	db Querier
}

// NewClienteRepository construye el adaptador; db puede ser el pool o una tx.
func NewClienteRepository(db Querier) *ClienteRepo {
	return &ClienteRepo{db: db}
}

// BuscarCuentaPorEmail obtiene la cuenta persona+cliente de un cliente
// registrado activo; (nil, nil) si no existe. Los invitados tienen email
// NULL y nunca aparecen aquí.
func (r *ClienteRepo) BuscarCuentaPorEmail(ctx context.Context, email string) (*entity.ClienteCuenta, error) {
	query := `
		SELECT p.codigo, p.nombre, p.apellidos, p.dni,
		       c.email, COALESCE(c.telefono, ''), c.password_hash,
		       c.puntos, c.nivel, c.fecha_registro
		FROM persona p
		INNER JOIN cliente c ON p.codigo = c.codigo
		WHERE c.email = $1 AND c.estado = 'activo' AND c.password_hash IS NOT NULL`
	var cc entity.ClienteCuenta
	err := r.db.QueryRow(ctx, query, email).Scan(
		&cc.Codigo, &cc.Nombre, &cc.Apellidos, &cc.DNI,
		&cc.Email, &cc.Telefono, &cc.PasswordHash,
		&cc.Puntos, &cc.Nivel, &cc.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by email: %w", err)
	}
	return &cc, nil
}

// ExisteEmail indica si ya hay un cliente con ese email.
func (r *ClienteRepo) ExisteEmail(ctx context.Context, email string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cliente WHERE email = $1)`, email).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists cliente email: %w", err)
	}
	return existe, nil
}

// CrearRegistrado inserta la fila cliente de un registro con credenciales.
func (r *ClienteRepo) CrearRegistrado(ctx context.Context, personaCodigo int64, email, telefono, passwordHash string) error {
	query := `
		INSERT INTO cliente (codigo, email, telefono, password_hash, puntos, nivel, fecha_registro, estado)
		VALUES ($1, $2, $3, $4, 0, $5, NOW(), 'activo')`
	_, err := r.db.Exec(ctx, query, personaCodigo, email, telefono, passwordHash, entity.NivelBronce)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// CrearInvitado inserta la fila cliente mínima del flujo de compra: solo la
// referencia a la persona, sin email ni credenciales.
func (r *ClienteRepo) CrearInvitado(ctx context.Context, personaCodigo int64) error {
	query := `
		INSERT INTO cliente (codigo, razon_social, ruc)
		VALUES ($1, NULL, NULL)`
	_, err := r.db.Exec(ctx, query, personaCodigo)
	if err != nil {
		return fmt.Errorf("insert cliente invitado: %w", err)
	}
	return nil
}
