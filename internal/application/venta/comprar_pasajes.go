// Package venta implementa la compra completa de pasajes: una transacción
// que resuelve al comprador, verifica disponibilidad asiento por asiento y
// emite los pasajes, todo o nada.
package venta

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

// recargoMascota tarifa fija cuando la compra declara viaje con mascota.
// Se aplica por pasaje: así el total cobrado es exactamente la suma de los
// importes emitidos.
var recargoMascota = decimal.NewFromInt(15)

// ComprarPasajesUseCase caso de uso de compra transaccional.
type ComprarPasajesUseCase struct {
	txRunner   TxRunner
	pasajeRepo repository.PasajeRepository
}

// NewComprarPasajesUseCase construye el caso de uso. pasajeRepo (fuera de
// transacción) atiende las lecturas de detalle para el boleto.
func NewComprarPasajesUseCase(txRunner TxRunner, pasajeRepo repository.PasajeRepository) *ComprarPasajesUseCase {
	return &ComprarPasajesUseCase{txRunner: txRunner, pasajeRepo: pasajeRepo}
}

// Comprar ejecuta la compra completa dentro de una sola transacción:
//
//  1. Resuelve la persona por dni; si no existe crea persona + cliente
//     invitado (sin credenciales).
//  2. Resuelve el costo referencial de la ruta del viaje
//     (ErrViajeNoEncontrado si el viaje no existe).
//  3. Por cada asiento re-verifica que no haya pasaje Vendido e inserta el
//     pasaje; un asiento ocupado aborta el lote entero.
//
// La carrera check-then-insert contra otra compra concurrente la cierra el
// índice único parcial (viaje_codigo, asiento) WHERE estado = 'Vendido':
// el perdedor recibe AsientoOcupadoError desde el insert.
func (uc *ComprarPasajesUseCase) Comprar(ctx context.Context, in dto.CompraRequest) (*dto.CompraData, error) {
	if err := validar(in); err != nil {
		return nil, err
	}

	conMascota := in.DatosAdicionales != nil && in.DatosAdicionales.ViajaConMascota

	var out dto.CompraData
	err := uc.txRunner.RunCompra(ctx, func(
		personaRepo repository.PersonaRepository,
		clienteRepo repository.ClienteRepository,
		viajeRepo repository.ViajeRepository,
		pasajeRepo repository.PasajeRepository,
	) error {
		clienteCodigo, err := resolverCliente(ctx, personaRepo, clienteRepo, in.Cliente)
		if err != nil {
			return err
		}

		costo, err := viajeRepo.CostoReferencial(ctx, in.ViajeCodigo)
		if err != nil {
			return err
		}
		if costo == nil {
			return domain.ErrViajeNoEncontrado
		}

		importe := *costo
		if conMascota {
			importe = importe.Add(recargoMascota)
		}

		total := decimal.Zero
		pasajes := make([]int64, 0, len(in.Asientos))
		for _, asiento := range in.Asientos {
			ocupado, err := pasajeRepo.ExisteVendido(ctx, in.ViajeCodigo, asiento)
			if err != nil {
				return err
			}
			if ocupado {
				return &domain.AsientoOcupadoError{Asiento: asiento}
			}

			pasaje := &entity.Pasaje{
				ViajeCodigo:           in.ViajeCodigo,
				ClienteCodigo:         clienteCodigo,
				Asiento:               asiento,
				ImportePagar:          importe,
				UsuarioVendedorCodigo: entity.UsuarioVendedorSistema,
				Estado:                entity.PasajeVendido,
				FechaEmision:          time.Now(),
			}
			if err := pasajeRepo.Crear(ctx, pasaje); err != nil {
				return err
			}
			pasajes = append(pasajes, pasaje.Codigo)
			total = total.Add(importe)
		}

		out = dto.CompraData{
			ClienteCodigo: clienteCodigo,
			Pasajes:       pasajes,
			TotalImporte:  total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ObtenerPasaje devuelve el detalle de un pasaje emitido (para el boleto).
func (uc *ComprarPasajesUseCase) ObtenerPasaje(ctx context.Context, codigo int64) (*entity.PasajeDetalle, error) {
	detalle, err := uc.pasajeRepo.DetallePorCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrNoEncontrado
	}
	return detalle, nil
}

func validar(in dto.CompraRequest) error {
	if in.ViajeCodigo <= 0 || in.Cliente.DNI == "" || in.Cliente.Nombre == "" || len(in.Asientos) == 0 {
		return domain.ErrEntradaInvalida
	}
	vistos := make(map[int]struct{}, len(in.Asientos))
	for _, a := range in.Asientos {
		if a <= 0 {
			return domain.ErrEntradaInvalida
		}
		if _, repetido := vistos[a]; repetido {
			return domain.ErrEntradaInvalida
		}
		vistos[a] = struct{}{}
	}
	return nil
}

// resolverCliente busca la persona por dni; si no existe la crea junto a la
// fila cliente mínima del flujo invitado. Comparte la transacción de la
// compra: un fallo posterior también revierte esta creación.
func resolverCliente(
	ctx context.Context,
	personaRepo repository.PersonaRepository,
	clienteRepo repository.ClienteRepository,
	c dto.ClienteCompra,
) (int64, error) {
	existente, err := personaRepo.BuscarPorDNI(ctx, c.DNI)
	if err != nil {
		return 0, err
	}
	if existente != nil {
		return existente.Codigo, nil
	}

	persona := &entity.Persona{Nombre: c.Nombre, Apellidos: c.Apellidos, DNI: c.DNI}
	if err := personaRepo.Crear(ctx, persona); err != nil {
		return 0, err
	}
	if err := clienteRepo.CrearInvitado(ctx, persona.Codigo); err != nil {
		return 0, err
	}
	return persona.Codigo, nil
}
