package entity

import "github.com/shopspring/decimal"

// Ruta dato de referencia estático: origen, destino y costo referencial.
type Ruta struct {
	Codigo           int64
	Origen           string
	Destino          string
	CostoReferencial decimal.Decimal
}
