package dto

// ReniecDataDTO atributos demográficos de una consulta de DNI, ya
// normalizados (sexo M/F, edad derivada de la fecha de nacimiento).
type ReniecDataDTO struct {
	DNI             string `json:"dni"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Sexo            string `json:"sexo"`
	Edad            int    `json:"edad"`
	EstadoCivil     string `json:"estadoCivil"`
	Ubigeo          string `json:"ubigeo"`
	Direccion       string `json:"direccion"`
	NombreCompleto  string `json:"nombreCompleto"`
}
