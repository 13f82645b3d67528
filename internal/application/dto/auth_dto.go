package dto

import "time"

// LoginRequest credenciales del login dual: type decide el espacio de
// principales (admin → tabla usuarios por login; otro → cliente por email).
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

// UsuarioDTO proyección pública del usuario de sistema.
type UsuarioDTO struct {
	Codigo         int64  `json:"codigo"`
	Usuario        string `json:"usuario"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	TipoUsuario    string `json:"tipo_usuario"`
}

// ClienteDTO proyección pública del cliente registrado.
type ClienteDTO struct {
	Codigo        int64     `json:"codigo"`
	Nombre        string    `json:"nombre"`
	Apellidos     string    `json:"apellidos"`
	Email         string    `json:"email"`
	DNI           string    `json:"dni"`
	Telefono      string    `json:"telefono"`
	Puntos        int       `json:"puntos"`
	Nivel         string    `json:"nivel"`
	FechaRegistro time.Time `json:"fechaRegistro"`
}

// LoginResponse token más el perfil del principal autenticado; según el
// tipo se llena usuario o cliente.
type LoginResponse struct {
	Token   string      `json:"token"`
	Usuario *UsuarioDTO `json:"usuario,omitempty"`
	Cliente *ClienteDTO `json:"cliente,omitempty"`
}

// RegisterClienteRequest alta de cliente con credenciales.
type RegisterClienteRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	DNI       string `json:"dni"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ClienteRegistradoDTO eco de los datos creados en el registro.
type ClienteRegistradoDTO struct {
	Codigo    int64  `json:"codigo"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
}

// RegisterClienteResponse respuesta del registro de cliente.
type RegisterClienteResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Cliente ClienteRegistradoDTO `json:"cliente"`
}

// RegisterAdminRequest alta de administrador: persona + contrato +
// empleado + usuario en una sola unidad.
type RegisterAdminRequest struct {
	Nombre      string `json:"nombre"`
	Apellidos   string `json:"apellidos"`
	DNI         string `json:"dni"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email"`
	Direccion   string `json:"direccion"`
	Usuario     string `json:"usuario"`
	Password    string `json:"password"`
	CargoCodigo int64  `json:"cargo_codigo"`
}

// AdminRegistradoDTO eco de los datos creados en el registro de admin.
type AdminRegistradoDTO struct {
	Codigo    int64  `json:"codigo"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
	Usuario   string `json:"usuario"`
}

// RegisterAdminResponse respuesta del registro de administrador.
type RegisterAdminResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Admin   AdminRegistradoDTO `json:"admin"`
}
