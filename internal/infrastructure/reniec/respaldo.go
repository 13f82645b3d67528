package reniec

import "github.com/Teamwawa12/ProyectoBus/internal/application/dto"

// tablaRespaldo registros locales usados cuando el servicio remoto no
// responde. Edad y nombre completo se derivan al momento de la consulta.
var tablaRespaldo = map[string]dto.ReniecDataDTO{
	"12345678": {
		DNI:             "12345678",
		Nombres:         "MARIA ELENA",
		ApellidoPaterno: "GONZALEZ",
		ApellidoMaterno: "PEREZ",
		FechaNacimiento: "1990-05-15",
		Sexo:            "F",
		EstadoCivil:     "SOLTERA",
		Ubigeo:          "150101",
		Direccion:       "AV. LIMA 123, LIMA",
	},
	"87654321": {
		DNI:             "87654321",
		Nombres:         "CARLOS ALBERTO",
		ApellidoPaterno: "MENDOZA",
		ApellidoMaterno: "SILVA",
		FechaNacimiento: "1985-08-22",
		Sexo:            "M",
		EstadoCivil:     "CASADO",
		Ubigeo:          "150101",
		Direccion:       "JR. AREQUIPA 456, LIMA",
	},
	"11223344": {
		DNI:             "11223344",
		Nombres:         "ANA LUCIA",
		ApellidoPaterno: "RODRIGUEZ",
		ApellidoMaterno: "LOPEZ",
		FechaNacimiento: "2010-03-10",
		Sexo:            "F",
		EstadoCivil:     "SOLTERA",
		Ubigeo:          "150101",
		Direccion:       "AV. BRASIL 789, LIMA",
	},
	"46027897": {
		DNI:             "46027897",
		Nombres:         "JUAN CARLOS",
		ApellidoPaterno: "VARGAS",
		ApellidoMaterno: "TORRES",
		FechaNacimiento: "1988-12-03",
		Sexo:            "M",
		EstadoCivil:     "SOLTERO",
		Ubigeo:          "150101",
		Direccion:       "AV. UNIVERSITARIA 321, LIMA",
	},
	"70123456": {
		DNI:             "70123456",
		Nombres:         "SOFIA ALEJANDRA",
		ApellidoPaterno: "MARTINEZ",
		ApellidoMaterno: "FLORES",
		FechaNacimiento: "1992-11-28",
		Sexo:            "F",
		EstadoCivil:     "CASADA",
		Ubigeo:          "150101",
		Direccion:       "CALLE LOS PINOS 654, LIMA",
	},
	"45678901": {
		DNI:             "45678901",
		Nombres:         "DIEGO FERNANDO",
		ApellidoPaterno: "CASTRO",
		ApellidoMaterno: "RUIZ",
		FechaNacimiento: "1987-07-14",
		Sexo:            "M",
		EstadoCivil:     "SOLTERO",
		Ubigeo:          "150101",
		Direccion:       "AV. COLONIAL 987, LIMA",
	},
	"72345678": {
		DNI:             "72345678",
		Nombres:         "CARMEN ROSA",
		ApellidoPaterno: "SILVA",
		ApellidoMaterno: "VEGA",
		FechaNacimiento: "1995-03-20",
		Sexo:            "F",
		EstadoCivil:     "SOLTERA",
		Ubigeo:          "150101",
		Direccion:       "JR. CUSCO 147, LIMA",
	},
	"73456789": {
		DNI:             "73456789",
		Nombres:         "PATRICIA ELENA",
		ApellidoPaterno: "MORALES",
		ApellidoMaterno: "CASTRO",
		FechaNacimiento: "1988-09-12",
		Sexo:            "F",
		EstadoCivil:     "CASADA",
		Ubigeo:          "150101",
		Direccion:       "AV. TACNA 258, LIMA",
	},
}
