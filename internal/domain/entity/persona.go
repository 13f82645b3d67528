package entity

// Persona identidad base compartida por clientes y empleados.
// El dni es único en toda la tabla: una misma persona nunca se duplica
// aunque llegue primero como invitado de compra y luego se registre.
type Persona struct {
	Codigo    int64
	Nombre    string
	Apellidos string
	DNI       string
}
