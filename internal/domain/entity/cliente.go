package entity

import "time"

// Niveles del programa de fidelidad.
const (
	NivelBronce = "Bronce"
)

// ClienteCuenta proyección persona+cliente de un cliente registrado,
// tal como la necesita el login y la respuesta de perfil.
// Los clientes invitados (creados en la compra, sin credenciales) no
// aparecen por esta vía: no tienen email ni password.
type ClienteCuenta struct {
	Codigo        int64
	Nombre        string
	Apellidos     string
	DNI           string
	Email         string
	Telefono      string
	PasswordHash  string
	Puntos        int
	Nivel         string
	FechaRegistro time.Time
}
