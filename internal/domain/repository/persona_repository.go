package repository

import (
	"context"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
)

// PersonaRepository puerto de persistencia para la identidad base.
type PersonaRepository interface {
	// BuscarPorDNI devuelve (nil, nil) si no existe persona con ese dni.
	BuscarPorDNI(ctx context.Context, dni string) (*entity.Persona, error)
	// Crear inserta la persona y asigna Codigo.
	Crear(ctx context.Context, p *entity.Persona) error
}
