package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrViajeNoEncontrado     = errors.New("viaje no encontrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrDNIDuplicado          = errors.New("ya existe una persona con este dni")
	ErrEmailDuplicado        = errors.New("ya existe un cliente con este email")
	ErrEmailEmpleado         = errors.New("ya existe un empleado con este email")
	ErrUsuarioDuplicado      = errors.New("ya existe un usuario con este nombre")
)

// AsientoOcupadoError indica que el asiento ya tiene un pasaje Vendido en el
// viaje. Aborta la compra completa: nunca se emite un lote parcial.
type AsientoOcupadoError struct {
	Asiento int
}

func (e *AsientoOcupadoError) Error() string {
	return fmt.Sprintf("el asiento %d ya está ocupado", e.Asiento)
}
