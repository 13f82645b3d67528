package venta_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/application/venta"
	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un "almacén" compartido que simula la transacción. El
// fakeTxRunner descarta los cambios del callback cuando este devuelve error,
// igual que haría el rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type almacen struct {
	personas    map[string]*entity.Persona // por dni
	clientes    map[int64]bool             // personaCodigo con fila cliente
	costos      map[int64]decimal.Decimal  // viajeCodigo → costo referencial
	pasajes     []entity.Pasaje
	nextPersona int64
	nextPasaje  int64
}

func nuevoAlmacen() *almacen {
	return &almacen{
		personas:    make(map[string]*entity.Persona),
		clientes:    make(map[int64]bool),
		costos:      make(map[int64]decimal.Decimal),
		nextPersona: 100,
		nextPasaje:  5000,
	}
}

func (a *almacen) clonar() *almacen {
	c := nuevoAlmacen()
	for dni, p := range a.personas {
		copia := *p
		c.personas[dni] = &copia
	}
	for k, v := range a.clientes {
		c.clientes[k] = v
	}
	for k, v := range a.costos {
		c.costos[k] = v
	}
	c.pasajes = append(c.pasajes, a.pasajes...)
	c.nextPersona = a.nextPersona
	c.nextPasaje = a.nextPasaje
	return c
}

type fakePersonaRepo struct{ a *almacen }

func (r *fakePersonaRepo) BuscarPorDNI(_ context.Context, dni string) (*entity.Persona, error) {
	p, ok := r.a.personas[dni]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakePersonaRepo) Crear(_ context.Context, p *entity.Persona) error {
	r.a.nextPersona++
	p.Codigo = r.a.nextPersona
	copia := *p
	r.a.personas[p.DNI] = &copia
	return nil
}

type fakeClienteRepo struct{ a *almacen }

func (r *fakeClienteRepo) BuscarCuentaPorEmail(context.Context, string) (*entity.ClienteCuenta, error) {
	return nil, nil
}
func (r *fakeClienteRepo) ExisteEmail(context.Context, string) (bool, error) { return false, nil }
func (r *fakeClienteRepo) CrearRegistrado(context.Context, int64, string, string, string) error {
	return nil
}
func (r *fakeClienteRepo) CrearInvitado(_ context.Context, personaCodigo int64) error {
	r.a.clientes[personaCodigo] = true
	return nil
}

type fakeViajeRepo struct{ a *almacen }

func (r *fakeViajeRepo) BuscarPorFecha(context.Context, time.Time, string) ([]entity.Viaje, error) {
	return nil, nil
}
func (r *fakeViajeRepo) ListarAdmin(context.Context, *time.Time, *string) ([]entity.Viaje, error) {
	return nil, nil
}
func (r *fakeViajeRepo) CostoReferencial(_ context.Context, viajeCodigo int64) (*decimal.Decimal, error) {
	costo, ok := r.a.costos[viajeCodigo]
	if !ok {
		return nil, nil
	}
	return &costo, nil
}

type fakePasajeRepo struct{ a *almacen }

func (r *fakePasajeRepo) AsientosOcupados(_ context.Context, viajeCodigo int64) ([]int, error) {
	var out []int
	for _, p := range r.a.pasajes {
		if p.ViajeCodigo == viajeCodigo && p.Estado == entity.PasajeVendido {
			out = append(out, p.Asiento)
		}
	}
	return out, nil
}

func (r *fakePasajeRepo) ExisteVendido(_ context.Context, viajeCodigo int64, asiento int) (bool, error) {
	for _, p := range r.a.pasajes {
		if p.ViajeCodigo == viajeCodigo && p.Asiento == asiento && p.Estado == entity.PasajeVendido {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePasajeRepo) Crear(_ context.Context, p *entity.Pasaje) error {
	r.a.nextPasaje++
	p.Codigo = r.a.nextPasaje
	r.a.pasajes = append(r.a.pasajes, *p)
	return nil
}

func (r *fakePasajeRepo) DetallePorCodigo(_ context.Context, codigo int64) (*entity.PasajeDetalle, error) {
	for _, p := range r.a.pasajes {
		if p.Codigo == codigo {
			return &entity.PasajeDetalle{
				Codigo:       p.Codigo,
				Asiento:      p.Asiento,
				ImportePagar: p.ImportePagar,
				Estado:       p.Estado,
				FechaEmision: p.FechaEmision,
			}, nil
		}
	}
	return nil, nil
}

// fakeTxRunner ejecuta el callback sobre una copia del almacén y solo
// publica los cambios si el callback termina sin error.
type fakeTxRunner struct{ a *almacen }

func (tx *fakeTxRunner) RunCompra(ctx context.Context, fn func(
	personaRepo repository.PersonaRepository,
	clienteRepo repository.ClienteRepository,
	viajeRepo repository.ViajeRepository,
	pasajeRepo repository.PasajeRepository,
) error) error {
	copia := tx.a.clonar()
	err := fn(
		&fakePersonaRepo{a: copia},
		&fakeClienteRepo{a: copia},
		&fakeViajeRepo{a: copia},
		&fakePasajeRepo{a: copia},
	)
	if err != nil {
		return err // rollback: el almacén original queda intacto
	}
	*tx.a = *copia
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const viajeLima int64 = 7

func costoBase() decimal.Decimal { return decimal.RequireFromString("75.50") }

func armarUseCase(t *testing.T) (*venta.ComprarPasajesUseCase, *almacen) {
	t.Helper()
	a := nuevoAlmacen()
	a.costos[viajeLima] = costoBase()
	uc := venta.NewComprarPasajesUseCase(&fakeTxRunner{a: a}, &fakePasajeRepo{a: a})
	return uc, a
}

func compraValida(asientos ...int) dto.CompraRequest {
	return dto.CompraRequest{
		ViajeCodigo: viajeLima,
		Cliente: dto.ClienteCompra{
			Nombre:    "Rosa",
			Apellidos: "Quispe Huamán",
			DNI:       "46027897",
		},
		Asientos:   asientos,
		MetodoPago: "tarjeta",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// N asientos → N pasajes emitidos y total = suma de importes.
func TestComprar_EmiteUnPasajePorAsiento(t *testing.T) {
	uc, a := armarUseCase(t)

	data, err := uc.Comprar(context.Background(), compraValida(5, 6, 7))
	require.NoError(t, err)

	assert.Len(t, data.Pasajes, 3, "debe emitirse un pasaje por asiento")
	assert.Len(t, a.pasajes, 3)

	esperado := costoBase().Mul(decimal.NewFromInt(3))
	assert.True(t, esperado.Equal(data.TotalImporte),
		"total %s debe ser la suma de los importes, esperado %s", data.TotalImporte, esperado)

	for _, p := range a.pasajes {
		assert.Equal(t, entity.PasajeVendido, p.Estado)
		assert.Equal(t, entity.UsuarioVendedorSistema, p.UsuarioVendedorCodigo)
		assert.True(t, costoBase().Equal(p.ImportePagar))
	}
}

// El comprador desconocido se crea una sola vez como persona + cliente invitado.
func TestComprar_CreaClienteInvitadoUnaVez(t *testing.T) {
	uc, a := armarUseCase(t)

	data, err := uc.Comprar(context.Background(), compraValida(10, 11))
	require.NoError(t, err)

	require.Len(t, a.personas, 1, "solo debe crearse una persona")
	persona := a.personas["46027897"]
	require.NotNil(t, persona)
	assert.Equal(t, persona.Codigo, data.ClienteCodigo)
	assert.True(t, a.clientes[persona.Codigo], "debe existir la fila cliente invitado")
}

// Si la persona ya existe por dni, se reutiliza sin crear otra.
func TestComprar_ReutilizaPersonaExistente(t *testing.T) {
	uc, a := armarUseCase(t)
	a.personas["46027897"] = &entity.Persona{Codigo: 33, Nombre: "Rosa", Apellidos: "Quispe Huamán", DNI: "46027897"}
	a.clientes[33] = true

	data, err := uc.Comprar(context.Background(), compraValida(1))
	require.NoError(t, err)

	assert.Equal(t, int64(33), data.ClienteCodigo)
	assert.Len(t, a.personas, 1)
}

// Un asiento ya vendido aborta el lote completo: cero pasajes nuevos.
func TestComprar_AsientoOcupadoAbortaTodo(t *testing.T) {
	uc, a := armarUseCase(t)
	a.pasajes = append(a.pasajes, entity.Pasaje{
		Codigo: 1, ViajeCodigo: viajeLima, Asiento: 6,
		Estado: entity.PasajeVendido, ImportePagar: costoBase(),
	})

	_, err := uc.Comprar(context.Background(), compraValida(5, 6, 7))

	var ocupado *domain.AsientoOcupadoError
	require.ErrorAs(t, err, &ocupado)
	assert.Equal(t, 6, ocupado.Asiento)
	assert.Len(t, a.pasajes, 1, "no debe emitirse ningún pasaje del lote")
	assert.Empty(t, a.personas, "la creación del cliente también debe revertirse")
}

// Viaje inexistente → ErrViajeNoEncontrado, sin efectos.
func TestComprar_ViajeInexistente(t *testing.T) {
	uc, a := armarUseCase(t)

	req := compraValida(3)
	req.ViajeCodigo = 999

	_, err := uc.Comprar(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrViajeNoEncontrado)
	assert.Empty(t, a.pasajes)
}

// Viaje con mascota: el recargo de S/15 se aplica a cada pasaje, y el total
// sigue siendo la suma de los importes emitidos.
func TestComprar_RecargoMascotaPorPasaje(t *testing.T) {
	uc, a := armarUseCase(t)

	req := compraValida(2, 3)
	req.DatosAdicionales = &dto.DatosAdicionales{
		ViajaConMascota: true,
		TipoMascota:     "perro",
		NombreMascota:   "Firulais",
	}

	data, err := uc.Comprar(context.Background(), req)
	require.NoError(t, err)

	conRecargo := costoBase().Add(decimal.NewFromInt(15))
	for _, p := range a.pasajes {
		assert.True(t, conRecargo.Equal(p.ImportePagar),
			"cada pasaje debe llevar el recargo: %s", p.ImportePagar)
	}
	esperado := conRecargo.Mul(decimal.NewFromInt(2))
	assert.True(t, esperado.Equal(data.TotalImporte))
}

// Validación de entrada: casos que deben rechazarse antes de abrir transacción.
func TestComprar_EntradaInvalida(t *testing.T) {
	uc, _ := armarUseCase(t)

	casos := map[string]dto.CompraRequest{
		"sin viaje": {
			Cliente:  dto.ClienteCompra{Nombre: "Rosa", DNI: "46027897"},
			Asientos: []int{1},
		},
		"sin dni": func() dto.CompraRequest {
			r := compraValida(1)
			r.Cliente.DNI = ""
			return r
		}(),
		"sin nombre": func() dto.CompraRequest {
			r := compraValida(1)
			r.Cliente.Nombre = ""
			return r
		}(),
		"sin asientos":        compraValida(),
		"asiento no positivo": compraValida(0),
		"asiento duplicado":   compraValida(4, 4),
	}

	for nombre, req := range casos {
		t.Run(nombre, func(t *testing.T) {
			_, err := uc.Comprar(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

// ObtenerPasaje: detalle existente y ausencia explícita.
func TestObtenerPasaje(t *testing.T) {
	uc, _ := armarUseCase(t)

	data, err := uc.Comprar(context.Background(), compraValida(9))
	require.NoError(t, err)
	require.Len(t, data.Pasajes, 1)

	detalle, err := uc.ObtenerPasaje(context.Background(), data.Pasajes[0])
	require.NoError(t, err)
	assert.Equal(t, 9, detalle.Asiento)
	assert.True(t, costoBase().Equal(detalle.ImportePagar))

	_, err = uc.ObtenerPasaje(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
