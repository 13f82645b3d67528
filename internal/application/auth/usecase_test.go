package auth_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Teamwawa12/ProyectoBus/internal/application/auth"
	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
	pkgjwt "github.com/Teamwawa12/ProyectoBus/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type registro struct {
	personas  map[string]*entity.Persona // por dni
	clientes  map[string]bool            // emails de cliente
	empleados map[string]bool            // emails de empleado
	usuarios  map[string]bool            // logins
	contratos int
	next      int64
}

func nuevoRegistro() *registro {
	return &registro{
		personas:  make(map[string]*entity.Persona),
		clientes:  make(map[string]bool),
		empleados: make(map[string]bool),
		usuarios:  make(map[string]bool),
		next:      10,
	}
}

type fakePersonaRepo struct{ r *registro }

func (f *fakePersonaRepo) BuscarPorDNI(_ context.Context, dni string) (*entity.Persona, error) {
	p, ok := f.r.personas[dni]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (f *fakePersonaRepo) Crear(_ context.Context, p *entity.Persona) error {
	f.r.next++
	p.Codigo = f.r.next
	f.r.personas[p.DNI] = p
	return nil
}

type fakeClienteRepo struct {
	r      *registro
	cuenta *entity.ClienteCuenta
}

func (f *fakeClienteRepo) BuscarCuentaPorEmail(_ context.Context, email string) (*entity.ClienteCuenta, error) {
	if f.cuenta != nil && f.cuenta.Email == email {
		return f.cuenta, nil
	}
	return nil, nil
}

func (f *fakeClienteRepo) ExisteEmail(_ context.Context, email string) (bool, error) {
	return f.r.clientes[email], nil
}

func (f *fakeClienteRepo) CrearRegistrado(_ context.Context, _ int64, email, _, _ string) error {
	f.r.clientes[email] = true
	return nil
}

func (f *fakeClienteRepo) CrearInvitado(context.Context, int64) error { return nil }

type fakeEmpleadoRepo struct{ r *registro }

func (f *fakeEmpleadoRepo) ExisteEmail(_ context.Context, email string) (bool, error) {
	return f.r.empleados[email], nil
}

func (f *fakeEmpleadoRepo) CrearContrato(_ context.Context, _ decimal.Decimal, _ int64) (int64, error) {
	f.r.contratos++
	return int64(f.r.contratos), nil
}

func (f *fakeEmpleadoRepo) Crear(_ context.Context, _ int64, _, _, email string, _, _ int64) error {
	f.r.empleados[email] = true
	return nil
}

type fakeUsuarioRepo struct {
	r      *registro
	cuenta *entity.UsuarioCuenta
}

func (f *fakeUsuarioRepo) BuscarCuentaPorUsuario(_ context.Context, usuario string) (*entity.UsuarioCuenta, error) {
	if f.cuenta != nil && f.cuenta.Usuario == usuario {
		return f.cuenta, nil
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) ExisteUsuario(_ context.Context, usuario string) (bool, error) {
	return f.r.usuarios[usuario], nil
}

func (f *fakeUsuarioRepo) Crear(_ context.Context, usuario, _ string, _, _ int64) error {
	f.r.usuarios[usuario] = true
	return nil
}

type fakeTxRunner struct {
	r           *registro
	usuarioRepo *fakeUsuarioRepo
	clienteRepo *fakeClienteRepo
	ejecuciones int
}

func (tx *fakeTxRunner) RunRegistro(ctx context.Context, fn func(
	personaRepo repository.PersonaRepository,
	clienteRepo repository.ClienteRepository,
	empleadoRepo repository.EmpleadoRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	tx.ejecuciones++
	return fn(
		&fakePersonaRepo{r: tx.r},
		tx.clienteRepo,
		&fakeEmpleadoRepo{r: tx.r},
		tx.usuarioRepo,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var jwtCfg = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "norteexpreso-test"}

func armarAuth(t *testing.T) (*auth.AuthUseCase, *registro, *fakeUsuarioRepo, *fakeClienteRepo) {
	t.Helper()
	r := nuevoRegistro()
	usuarioRepo := &fakeUsuarioRepo{r: r}
	clienteRepo := &fakeClienteRepo{r: r}
	tx := &fakeTxRunner{r: r, usuarioRepo: usuarioRepo, clienteRepo: clienteRepo}
	return auth.NewAuthUseCase(usuarioRepo, clienteRepo, tx, jwtCfg), r, usuarioRepo, clienteRepo
}

func hashDe(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminExitoso(t *testing.T) {
	uc, _, usuarioRepo, _ := armarAuth(t)
	usuarioRepo.cuenta = &entity.UsuarioCuenta{
		Codigo:         4,
		Usuario:        "jperez",
		Clave:          hashDe(t, "clave-correcta"),
		Estado:         entity.EstadoActivo,
		TipoUsuario:    "Administrador",
		NombreCompleto: "Juan Pérez",
		Email:          "jperez@norteexpreso.com",
	}

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Usuario: "jperez", Password: "clave-correcta", Type: pkgjwt.TypeAdmin,
	})
	require.NoError(t, err)

	require.NotNil(t, out.Usuario)
	assert.Nil(t, out.Cliente)
	assert.Equal(t, "jperez", out.Usuario.Usuario)
	assert.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.TypeAdmin, claims.Type)
	assert.Equal(t, int64(4), claims.Codigo)
}

func TestLogin_ClienteExitoso(t *testing.T) {
	uc, _, _, clienteRepo := armarAuth(t)
	clienteRepo.cuenta = &entity.ClienteCuenta{
		Codigo:       9,
		Nombre:       "Rosa",
		Apellidos:    "Quispe",
		Email:        "rosa@mail.com",
		PasswordHash: hashDe(t, "mi-clave"),
		Nivel:        entity.NivelBronce,
	}

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Usuario: "rosa@mail.com", Password: "mi-clave", Type: "customer",
	})
	require.NoError(t, err)

	require.NotNil(t, out.Cliente)
	assert.Nil(t, out.Usuario)
	assert.Equal(t, entity.NivelBronce, out.Cliente.Nivel)

	claims, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.TypeCustomer, claims.Type)
}

// Cuenta inexistente y contraseña incorrecta devuelven el mismo error de
// dominio: la respuesta HTTP no revela cuál de los dos fue.
func TestLogin_ErrorUnificado(t *testing.T) {
	uc, _, usuarioRepo, _ := armarAuth(t)
	usuarioRepo.cuenta = &entity.UsuarioCuenta{
		Usuario: "jperez",
		Clave:   hashDe(t, "clave-correcta"),
	}

	_, errInexistente := uc.Login(context.Background(), dto.LoginRequest{
		Usuario: "nadie", Password: "lo-que-sea", Type: pkgjwt.TypeAdmin,
	})
	_, errClaveMala := uc.Login(context.Background(), dto.LoginRequest{
		Usuario: "jperez", Password: "clave-incorrecta", Type: pkgjwt.TypeAdmin,
	})

	assert.ErrorIs(t, errInexistente, domain.ErrCredencialesInvalidas)
	assert.ErrorIs(t, errClaveMala, domain.ErrCredencialesInvalidas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registros
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCliente_Exitoso(t *testing.T) {
	uc, r, _, _ := armarAuth(t)

	out, err := uc.RegisterCliente(context.Background(), dto.RegisterClienteRequest{
		Nombre: "Rosa", Apellidos: "Quispe", DNI: "46027897",
		Email: "rosa@mail.com", Telefono: "987654321", Password: "mi-clave",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "46027897", out.Cliente.DNI)
	assert.NotZero(t, out.Cliente.Codigo)
	assert.True(t, r.clientes["rosa@mail.com"], "debe quedar la fila cliente")
	require.NotNil(t, r.personas["46027897"])
}

func TestRegisterCliente_DNIDuplicado(t *testing.T) {
	uc, r, _, _ := armarAuth(t)
	r.personas["46027897"] = &entity.Persona{Codigo: 3, DNI: "46027897"}

	_, err := uc.RegisterCliente(context.Background(), dto.RegisterClienteRequest{
		Nombre: "Rosa", Apellidos: "Quispe", DNI: "46027897",
		Email: "rosa@mail.com", Password: "mi-clave",
	})
	assert.ErrorIs(t, err, domain.ErrDNIDuplicado)
}

func TestRegisterCliente_EmailDuplicado(t *testing.T) {
	uc, r, _, _ := armarAuth(t)
	r.clientes["rosa@mail.com"] = true

	_, err := uc.RegisterCliente(context.Background(), dto.RegisterClienteRequest{
		Nombre: "Rosa", Apellidos: "Quispe", DNI: "46027897",
		Email: "rosa@mail.com", Password: "mi-clave",
	})
	assert.ErrorIs(t, err, domain.ErrEmailDuplicado)
}

func TestRegisterAdmin_CreaCadenaCompleta(t *testing.T) {
	uc, r, _, _ := armarAuth(t)

	out, err := uc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		Nombre: "Juan", Apellidos: "Pérez", DNI: "70123456",
		Email: "jperez@norteexpreso.com", Direccion: "Av. España 100",
		Usuario: "jperez", Password: "clave-admin", CargoCodigo: 1,
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "jperez", out.Admin.Usuario)
	require.NotNil(t, r.personas["70123456"])
	assert.True(t, r.empleados["jperez@norteexpreso.com"], "debe crearse el empleado")
	assert.True(t, r.usuarios["jperez"], "debe crearse el usuario de sistema")
	assert.Equal(t, 1, r.contratos, "debe emitirse exactamente un contrato")
}

func TestRegisterAdmin_UsuarioDuplicado(t *testing.T) {
	uc, r, _, _ := armarAuth(t)
	r.usuarios["jperez"] = true

	_, err := uc.RegisterAdmin(context.Background(), dto.RegisterAdminRequest{
		Nombre: "Juan", Apellidos: "Pérez", DNI: "70123456",
		Email: "otro@norteexpreso.com", Usuario: "jperez",
		Password: "clave-admin", CargoCodigo: 1,
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioDuplicado)
}
