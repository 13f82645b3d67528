// Package auth implementa login dual (staff y cliente) y los registros
// transaccionales de cliente y administrador.
package auth

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
	"github.com/Teamwawa12/ProyectoBus/pkg/jwt"
)

// Valores fijos del alta de administrador, heredados del flujo de RRHH:
// contrato inicial estándar y tipo de usuario administrador.
var sueldoInicial = decimal.NewFromInt(3000)

const (
	turnoInicial     int64 = 1
	tipoUsuarioAdmin int64 = 1
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegistroTxRunner puerto transaccional de los registros: el callback recibe
// repos atados a una misma transacción; cualquier error revierte todo.
type RegistroTxRunner interface {
	RunRegistro(ctx context.Context, fn func(
		personaRepo repository.PersonaRepository,
		clienteRepo repository.ClienteRepository,
		empleadoRepo repository.EmpleadoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación y alta de principales.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	clienteRepo repository.ClienteRepository
	txRunner    RegistroTxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	usuarioRepo repository.UsuarioRepository,
	clienteRepo repository.ClienteRepository,
	txRunner RegistroTxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, clienteRepo: clienteRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Login autentica según el tipo de principal y emite el token de sesión.
// El mensaje de fallo es único para principal inexistente y contraseña
// incorrecta; el motivo exacto viaja envuelto para los logs, nunca al cliente.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Type == jwt.TypeAdmin {
		return uc.loginAdmin(ctx, in)
	}
	return uc.loginCliente(ctx, in)
}

func (uc *AuthUseCase) loginAdmin(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	cuenta, err := uc.usuarioRepo.BuscarCuentaPorUsuario(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, fmt.Errorf("usuario %q no encontrado: %w", in.Usuario, domain.ErrCredencialesInvalidas)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cuenta.Clave), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("contraseña incorrecta para %q: %w", in.Usuario, domain.ErrCredencialesInvalidas)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cuenta.Codigo, cuenta.Usuario, cuenta.TipoUsuario, jwt.TypeAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: &dto.UsuarioDTO{
			Codigo:         cuenta.Codigo,
			Usuario:        cuenta.Usuario,
			NombreCompleto: cuenta.NombreCompleto,
			Email:          cuenta.Email,
			TipoUsuario:    cuenta.TipoUsuario,
		},
	}, nil
}

func (uc *AuthUseCase) loginCliente(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	cuenta, err := uc.clienteRepo.BuscarCuentaPorEmail(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, fmt.Errorf("cliente %q no encontrado: %w", in.Usuario, domain.ErrCredencialesInvalidas)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cuenta.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("contraseña incorrecta para %q: %w", in.Usuario, domain.ErrCredencialesInvalidas)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cuenta.Codigo, cuenta.Email, "", jwt.TypeCustomer, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Cliente: &dto.ClienteDTO{
			Codigo:        cuenta.Codigo,
			Nombre:        cuenta.Nombre,
			Apellidos:     cuenta.Apellidos,
			Email:         cuenta.Email,
			DNI:           cuenta.DNI,
			Telefono:      cuenta.Telefono,
			Puntos:        cuenta.Puntos,
			Nivel:         cuenta.Nivel,
			FechaRegistro: cuenta.FechaRegistro,
		},
	}, nil
}

// RegisterCliente crea persona y cliente en una sola transacción.
// Las verificaciones de unicidad (dni, email) comparten la transacción con
// los inserts: un duplicado aborta sin dejar fila huérfana.
func (uc *AuthUseCase) RegisterCliente(ctx context.Context, in dto.RegisterClienteRequest) (*dto.RegisterClienteResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var personaCodigo int64
	err = uc.txRunner.RunRegistro(ctx, func(
		personaRepo repository.PersonaRepository,
		clienteRepo repository.ClienteRepository,
		_ repository.EmpleadoRepository,
		_ repository.UsuarioRepository,
	) error {
		existente, err := personaRepo.BuscarPorDNI(ctx, in.DNI)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrDNIDuplicado
		}
		tieneEmail, err := clienteRepo.ExisteEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if tieneEmail {
			return domain.ErrEmailDuplicado
		}

		persona := &entity.Persona{Nombre: in.Nombre, Apellidos: in.Apellidos, DNI: in.DNI}
		if err := personaRepo.Crear(ctx, persona); err != nil {
			return err
		}
		personaCodigo = persona.Codigo
		return clienteRepo.CrearRegistrado(ctx, persona.Codigo, in.Email, in.Telefono, string(hash))
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterClienteResponse{
		Success: true,
		Message: "Cliente registrado exitosamente",
		Cliente: dto.ClienteRegistradoDTO{
			Codigo:    personaCodigo,
			Nombre:    in.Nombre,
			Apellidos: in.Apellidos,
			DNI:       in.DNI,
			Email:     in.Email,
			Telefono:  in.Telefono,
		},
	}, nil
}

// RegisterAdmin crea la cadena persona → contrato → empleado → usuario en
// una sola transacción, con tres verificaciones de unicidad previas
// (dni, email de empleado, login).
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, in dto.RegisterAdminRequest) (*dto.RegisterAdminResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var personaCodigo int64
	err = uc.txRunner.RunRegistro(ctx, func(
		personaRepo repository.PersonaRepository,
		_ repository.ClienteRepository,
		empleadoRepo repository.EmpleadoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error {
		existente, err := personaRepo.BuscarPorDNI(ctx, in.DNI)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrDNIDuplicado
		}
		tieneEmail, err := empleadoRepo.ExisteEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if tieneEmail {
			return domain.ErrEmailEmpleado
		}
		tieneUsuario, err := usuarioRepo.ExisteUsuario(ctx, in.Usuario)
		if err != nil {
			return err
		}
		if tieneUsuario {
			return domain.ErrUsuarioDuplicado
		}

		persona := &entity.Persona{Nombre: in.Nombre, Apellidos: in.Apellidos, DNI: in.DNI}
		if err := personaRepo.Crear(ctx, persona); err != nil {
			return err
		}
		personaCodigo = persona.Codigo

		contratoCodigo, err := empleadoRepo.CrearContrato(ctx, sueldoInicial, turnoInicial)
		if err != nil {
			return err
		}
		if err := empleadoRepo.Crear(ctx, persona.Codigo, in.Direccion, in.Telefono, in.Email, contratoCodigo, in.CargoCodigo); err != nil {
			return err
		}
		return usuarioRepo.Crear(ctx, in.Usuario, string(hash), persona.Codigo, tipoUsuarioAdmin)
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterAdminResponse{
		Success: true,
		Message: "Administrador registrado exitosamente",
		Admin: dto.AdminRegistradoDTO{
			Codigo:    personaCodigo,
			Nombre:    in.Nombre,
			Apellidos: in.Apellidos,
			DNI:       in.DNI,
			Email:     in.Email,
			Usuario:   in.Usuario,
		},
	}, nil
}
