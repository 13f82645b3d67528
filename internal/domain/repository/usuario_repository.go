package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios de sistema (staff).
type UsuarioRepository interface {
	// BuscarCuentaPorUsuario devuelve (nil, nil) si no hay usuario activo
	// con ese login.
	BuscarCuentaPorUsuario(ctx context.Context, usuario string) (*entity.UsuarioCuenta, error)
	ExisteUsuario(ctx context.Context, usuario string) (bool, error)
	// Crear inserta la fila usuarios apuntando al empleado.
	Crear(ctx context.Context, usuario, clave string, empleadoCodigo, tipoUsuarioCodigo int64) error
}

// EmpleadoRepository puerto de persistencia de empleados y sus contratos.
type EmpleadoRepository interface {
	ExisteEmail(ctx context.Context, email string) (bool, error)
	// CrearContrato inserta el contrato y devuelve su código.
	CrearContrato(ctx context.Context, sueldo decimal.Decimal, turnoCodigo int64) (int64, error)
	// Crear inserta la fila empleado sobre la persona ya creada.
	Crear(ctx context.Context, personaCodigo int64, direccion, telefono, email string, contratoCodigo, cargoCodigo int64) error
}
