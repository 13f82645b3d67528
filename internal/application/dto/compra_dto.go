package dto

import "github.com/shopspring/decimal"

// ClienteCompra identidad del comprador; si el dni no existe se crea como
// cliente invitado dentro de la misma transacción de compra.
type ClienteCompra struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	DNI       string `json:"dni"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
}

// DatosAdicionales contexto opcional de la compra (contacto, mascota,
// menor con tutor). Solo viaja_con_mascota afecta el importe.
type DatosAdicionales struct {
	TelefonoContacto string  `json:"telefono_contacto,omitempty"`
	ViajaConMascota  bool    `json:"viaja_con_mascota,omitempty"`
	TipoMascota      string  `json:"tipo_mascota,omitempty"`
	NombreMascota    string  `json:"nombre_mascota,omitempty"`
	PesoMascota      float64 `json:"peso_mascota,omitempty"`
	TutorNombre      string  `json:"tutor_nombre,omitempty"`
	TutorDNI         string  `json:"tutor_dni,omitempty"`
	PermisoNotarial  bool    `json:"permiso_notarial,omitempty"`
}

// CompraRequest compra completa: viaje, comprador, asientos y pago.
type CompraRequest struct {
	ViajeCodigo      int64             `json:"viaje_codigo"`
	Cliente          ClienteCompra     `json:"cliente"`
	Asientos         []int             `json:"asientos"`
	MetodoPago       string            `json:"metodo_pago"`
	DatosAdicionales *DatosAdicionales `json:"datosAdicionales,omitempty"`
}

// CompraData resultado de la compra: cliente resuelto, pasajes emitidos y total.
type CompraData struct {
	ClienteCodigo int64           `json:"clienteCodigo"`
	Pasajes       []int64         `json:"pasajes"`
	TotalImporte  decimal.Decimal `json:"totalImporte"`
}

// CompraResponse envoltorio de éxito de la compra.
type CompraResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    CompraData `json:"data"`
}
