package entity

// Estados de cuenta de usuario de sistema.
const (
	EstadoActivo = "activo"
)

// UsuarioCuenta proyección usuario+empleado+persona de un usuario de sistema
// (staff), con los joins que necesita el login y el dashboard.
type UsuarioCuenta struct {
	Codigo            int64
	Usuario           string
	Clave             string // hash bcrypt
	Estado            string
	TipoUsuarioCodigo int64
	TipoUsuario       string // descripción del rol, ej. "Administrador"
	NombreCompleto    string
	Email             string
}
