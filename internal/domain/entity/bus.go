package entity

// Estados operativos de la flota.
const (
	BusOperativo = "Operativo"
)

// Bus vehículo de la flota con su capacidad de asientos.
type Bus struct {
	Codigo      int64
	Placa       string
	Fabricante  string
	NumAsientos int
	Estado      string
}
