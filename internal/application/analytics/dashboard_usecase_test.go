package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teamwawa12/ProyectoBus/internal/application/analytics"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

// fakeEstadisticasRepo devuelve valores fijos; cada consulta puede forzarse
// a fallar para probar la propagación de errores.
type fakeEstadisticasRepo struct {
	pasajes  int64
	ingresos decimal.Decimal
	buses    int64
	viajes   int64
	rutas    []repository.RutaPopular

	errVentas error
	errBuses  error
	errViajes error
	errRutas  error

	limiteRecibido int
}

func (f *fakeEstadisticasRepo) VentasEnRango(_ context.Context, desde, hasta time.Time) (int64, decimal.Decimal, error) {
	if f.errVentas != nil {
		return 0, decimal.Zero, f.errVentas
	}
	return f.pasajes, f.ingresos, nil
}

func (f *fakeEstadisticasRepo) BusesOperativos(context.Context) (int64, error) {
	return f.buses, f.errBuses
}

func (f *fakeEstadisticasRepo) ViajesProgramadosEnRango(context.Context, time.Time, time.Time) (int64, error) {
	return f.viajes, f.errViajes
}

func (f *fakeEstadisticasRepo) RutasPopulares(_ context.Context, limite int) ([]repository.RutaPopular, error) {
	f.limiteRecibido = limite
	if f.errRutas != nil {
		return nil, f.errRutas
	}
	return f.rutas, nil
}

func TestEstadisticas_ComponeElResumen(t *testing.T) {
	repo := &fakeEstadisticasRepo{
		pasajes:  37,
		ingresos: decimal.RequireFromString("2827.505"),
		buses:    12,
		viajes:   8,
		rutas: []repository.RutaPopular{
			{Origen: "Trujillo", Destino: "Lima", TotalPasajes: 120, TotalIngresos: decimal.RequireFromString("9060.00")},
			{Origen: "Trujillo", Destino: "Chiclayo", TotalPasajes: 85, TotalIngresos: decimal.RequireFromString("2125.00")},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(37), out.VentasHoy.Pasajeros)
	assert.Equal(t, "2827.51", out.VentasHoy.Ingresos.StringFixed(2),
		"los ingresos deben redondearse a 2 decimales")
	assert.Equal(t, int64(12), out.BusesOperativos)
	assert.Equal(t, int64(8), out.ViajesProgramados)
	require.Len(t, out.RutasPopulares, 2)
	assert.Equal(t, "Lima", out.RutasPopulares[0].Destino)
	assert.Equal(t, int64(120), out.RutasPopulares[0].TotalPasajes)
	assert.Equal(t, 5, repo.limiteRecibido, "el ranking debe pedirse con top 5")
}

func TestEstadisticas_SinVentasNiRutas(t *testing.T) {
	repo := &fakeEstadisticasRepo{ingresos: decimal.Zero}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.VentasHoy.Pasajeros)
	assert.NotNil(t, out.RutasPopulares, "el ranking vacío debe serializarse como lista, no null")
	assert.Empty(t, out.RutasPopulares)
}

func TestEstadisticas_PropagaErrores(t *testing.T) {
	fallo := errors.New("conexión perdida")

	casos := map[string]*fakeEstadisticasRepo{
		"ventas": {errVentas: fallo, ingresos: decimal.Zero},
		"buses":  {errBuses: fallo, ingresos: decimal.Zero},
		"viajes": {errViajes: fallo, ingresos: decimal.Zero},
		"rutas":  {errRutas: fallo, ingresos: decimal.Zero},
	}

	for nombre, repo := range casos {
		t.Run(nombre, func(t *testing.T) {
			uc := analytics.NewDashboardUseCase(repo)
			_, err := uc.Estadisticas(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, fallo, "el error original debe viajar envuelto")
		})
	}
}
