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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db Querier
}

// NewUsuarioRepository construye el adaptador; db puede ser el pool o una tx.
func NewUsuarioRepository(db Querier) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

// BuscarCuentaPorUsuario obtiene la cuenta de staff por login, con los
// joins de empleado y persona; (nil, nil) si no hay usuario activo.
func (r *UsuarioRepo) BuscarCuentaPorUsuario(ctx context.Context, usuario string) (*entity.UsuarioCuenta, error) {
	query := `
		SELECT u.codigo, u.usuario, u.clave, u.estado, u.tipo_usuario_codigo,
		       tu.descripcion, p.nombre || ' ' || p.apellidos, e.email
		FROM usuarios u
		INNER JOIN tipo_usuario tu ON u.tipo_usuario_codigo = tu.codigo
		INNER JOIN empleado e ON u.empleado_codigo = e.codigo
		INNER JOIN persona p ON e.codigo = p.codigo
		WHERE u.usuario = $1 AND u.estado = 'activo'`
	var uc entity.UsuarioCuenta
	err := r.db.QueryRow(ctx, query, usuario).Scan(
		&uc.Codigo, &uc.Usuario, &uc.Clave, &uc.Estado, &uc.TipoUsuarioCodigo,
		&uc.TipoUsuario, &uc.NombreCompleto, &uc.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by login: %w", err)
	}
	return &uc, nil
}

// ExisteUsuario indica si ya hay un usuario con ese login.
func (r *UsuarioRepo) ExisteUsuario(ctx context.Context, usuario string) (bool, error) {
	var existe bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM usuarios WHERE usuario = $1)`, usuario).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists usuario: %w", err)
	}
	return existe, nil
}

// Crear inserta la fila usuarios apuntando al empleado.
func (r *UsuarioRepo) Crear(ctx context.Context, usuario, clave string, empleadoCodigo, tipoUsuarioCodigo int64) error {
	query := `
		INSERT INTO usuarios (usuario, clave, estado, empleado_codigo, tipo_usuario_codigo)
		VALUES ($1, $2, 'activo', $3, $4)`
	_, err := r.db.Exec(ctx, query, usuario, clave, empleadoCodigo, tipoUsuarioCodigo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsuarioDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}
