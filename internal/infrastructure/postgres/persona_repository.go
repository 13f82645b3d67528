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

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

// PersonaRepo implementación del puerto PersonaRepository sobre PostgreSQL.
type PersonaRepo struct {
	db Querier
}

// NewPersonaRepository construye el adaptador; db puede ser el pool o una tx.
func NewPersonaRepository(db Querier) *PersonaRepo {
	return &PersonaRepo{db: db}
}

// BuscarPorDNI obtiene una persona por dni; (nil, nil) si no existe.
func (r *PersonaRepo) BuscarPorDNI(ctx context.Context, dni string) (*entity.Persona, error) {
	query := `
		SELECT codigo, nombre, apellidos, dni
		FROM persona WHERE dni = $1`
	var p entity.Persona
	err := r.db.QueryRow(ctx, query, dni).Scan(&p.Codigo, &p.Nombre, &p.Apellidos, &p.DNI)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona by dni: %w", err)
	}
	return &p, nil
}

// Crear inserta la persona y asigna el código generado.
func (r *PersonaRepo) Crear(ctx context.Context, p *entity.Persona) error {
	query := `
		INSERT INTO persona (nombre, apellidos, dni)
		VALUES ($1, $2, $3)
		RETURNING codigo`
	err := r.db.QueryRow(ctx, query, p.Nombre, p.Apellidos, p.DNI).Scan(&p.Codigo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDNIDuplicado
		}
		return fmt.Errorf("insert persona: %w", err)
	}
	return nil
}
