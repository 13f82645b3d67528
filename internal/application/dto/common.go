package dto

// ErrorResponse cuerpo de error del API: JSON {"error": "..."}.
// Nunca incluye detalle interno; eso queda en los logs del servidor.
type ErrorResponse struct {
	Error string `json:"error"`
}
