package venta

import (
	"context"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

// TxRunner puerto transaccional de la compra: el callback recibe repos
// atados a una misma transacción. La resolución del cliente, el re-chequeo
// de asientos y los inserts de pasajes comparten esa transacción; cualquier
// error la revierte completa, incluida la creación del cliente invitado.
type TxRunner interface {
	RunCompra(ctx context.Context, fn func(
		personaRepo repository.PersonaRepository,
		clienteRepo repository.ClienteRepository,
		viajeRepo repository.ViajeRepository,
		pasajeRepo repository.PasajeRepository,
	) error) error
}
