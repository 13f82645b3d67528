package repository

import (
	"context"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
)

// ClienteRepository puerto de persistencia del subtipo cliente.
type ClienteRepository interface {
	// BuscarCuentaPorEmail devuelve (nil, nil) si no hay cliente registrado
	// activo con ese email.
	BuscarCuentaPorEmail(ctx context.Context, email string) (*entity.ClienteCuenta, error)
	ExisteEmail(ctx context.Context, email string) (bool, error)
	// CrearRegistrado inserta la fila cliente de un registro con credenciales.
	CrearRegistrado(ctx context.Context, personaCodigo int64, email, telefono, passwordHash string) error
	// CrearInvitado inserta la fila cliente mínima del flujo de compra:
	// sin email ni credenciales, solo la referencia a la persona.
	CrearInvitado(ctx context.Context, personaCodigo int64) error
}
