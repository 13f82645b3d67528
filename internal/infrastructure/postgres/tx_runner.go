package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Teamwawa12/ProyectoBus/internal/application/auth"
	"github.com/Teamwawa12/ProyectoBus/internal/application/venta"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

// Ensure TxRunner implements venta.TxRunner and auth.RegistroTxRunner.
var _ venta.TxRunner = (*TxRunner)(nil)
var _ auth.RegistroTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCompra inicia una transacción con los repos de la compra de pasajes y
// hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunCompra(ctx context.Context, fn func(
	personaRepo repository.PersonaRepository,
	clienteRepo repository.ClienteRepository,
	viajeRepo repository.ViajeRepository,
	pasajeRepo repository.PasajeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	personaRepo := NewPersonaRepository(tx)
	clienteRepo := NewClienteRepository(tx)
	viajeRepo := NewViajeRepository(tx)
	pasajeRepo := NewPasajeRepository(tx)

	if err := fn(personaRepo, clienteRepo, viajeRepo, pasajeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistro inicia una transacción con los repos de los registros de
// cliente y administrador (persona, cliente, empleado, usuario).
func (r *TxRunner) RunRegistro(ctx context.Context, fn func(
	personaRepo repository.PersonaRepository,
	clienteRepo repository.ClienteRepository,
	empleadoRepo repository.EmpleadoRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	personaRepo := NewPersonaRepository(tx)
	clienteRepo := NewClienteRepository(tx)
	empleadoRepo := NewEmpleadoRepository(tx)
	usuarioRepo := NewUsuarioRepository(tx)

	if err := fn(personaRepo, clienteRepo, empleadoRepo, usuarioRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
