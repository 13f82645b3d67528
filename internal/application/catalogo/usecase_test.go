package catalogo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teamwawa12/ProyectoBus/internal/application/catalogo"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
)

type fakeRutaRepo struct{ rutas []entity.Ruta }

func (f *fakeRutaRepo) Listar(context.Context) ([]entity.Ruta, error) { return f.rutas, nil }

type fakeBusRepo struct{ buses []entity.Bus }

func (f *fakeBusRepo) Listar(context.Context) ([]entity.Bus, error) { return f.buses, nil }

type fakeViajeRepo struct {
	viajes         []entity.Viaje
	estadoRecibido string
}

func (f *fakeViajeRepo) BuscarPorFecha(_ context.Context, _ time.Time, estado string) ([]entity.Viaje, error) {
	f.estadoRecibido = estado
	return f.viajes, nil
}

func (f *fakeViajeRepo) ListarAdmin(context.Context, *time.Time, *string) ([]entity.Viaje, error) {
	return f.viajes, nil
}

func (f *fakeViajeRepo) CostoReferencial(context.Context, int64) (*decimal.Decimal, error) {
	return nil, nil
}

type fakePasajeRepo struct{ asientos []int }

func (f *fakePasajeRepo) AsientosOcupados(context.Context, int64) ([]int, error) {
	return f.asientos, nil
}
func (f *fakePasajeRepo) ExisteVendido(context.Context, int64, int) (bool, error) {
	return false, nil
}
func (f *fakePasajeRepo) Crear(context.Context, *entity.Pasaje) error { return nil }
func (f *fakePasajeRepo) DetallePorCodigo(context.Context, int64) (*entity.PasajeDetalle, error) {
	return nil, nil
}

func viajeDePrueba(codigo int64, origen, destino string) entity.Viaje {
	return entity.Viaje{
		Codigo:              codigo,
		Origen:              origen,
		Destino:             destino,
		Estado:              entity.ViajeProgramado,
		CostoReferencial:    decimal.RequireFromString("40.00"),
		NumAsientos:         40,
		AsientosDisponibles: 40,
	}
}

// La búsqueda filtra origen/destino sin distinguir tildes ni mayúsculas.
func TestBuscarViajes_FiltraSinTildes(t *testing.T) {
	viajeRepo := &fakeViajeRepo{viajes: []entity.Viaje{
		viajeDePrueba(1, "Trujillo", "Huánuco"),
		viajeDePrueba(2, "Trujillo", "Lima"),
		viajeDePrueba(3, "Chiclayo", "Huánuco"),
	}}
	uc := catalogo.NewCatalogoUseCase(&fakeRutaRepo{}, viajeRepo, &fakeBusRepo{}, &fakePasajeRepo{})

	out, err := uc.BuscarViajes(context.Background(), "TRUJILLO", "huanuco", time.Now())
	require.NoError(t, err)

	require.Len(t, out, 1, "solo debe quedar el viaje Trujillo → Huánuco")
	assert.Equal(t, int64(1), out[0].Codigo)
	assert.Equal(t, entity.ViajeProgramado, viajeRepo.estadoRecibido,
		"la búsqueda pública solo considera viajes programados")
}

func TestBuscarViajes_SinCoincidencias(t *testing.T) {
	viajeRepo := &fakeViajeRepo{viajes: []entity.Viaje{viajeDePrueba(1, "Trujillo", "Lima")}}
	uc := catalogo.NewCatalogoUseCase(&fakeRutaRepo{}, viajeRepo, &fakeBusRepo{}, &fakePasajeRepo{})

	out, err := uc.BuscarViajes(context.Background(), "Piura", "Tumbes", time.Now())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out, "sin coincidencias debe devolverse lista vacía, no null")
}

// AsientosOcupados nunca devuelve nil.
func TestAsientosOcupados_SiempreSlice(t *testing.T) {
	uc := catalogo.NewCatalogoUseCase(&fakeRutaRepo{}, &fakeViajeRepo{}, &fakeBusRepo{}, &fakePasajeRepo{})

	out, err := uc.AsientosOcupados(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestAsientosOcupados_DevuelveLosVendidos(t *testing.T) {
	uc := catalogo.NewCatalogoUseCase(&fakeRutaRepo{}, &fakeViajeRepo{}, &fakeBusRepo{}, &fakePasajeRepo{asientos: []int{3, 8, 21}})

	out, err := uc.AsientosOcupados(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 8, 21}, out)
}
