package venta

import (
	"context"
	"fmt"

	"github.com/Teamwawa12/ProyectoBus/internal/domain"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

// BoletoGenerator puerto de generación del boleto imprimible.
type BoletoGenerator interface {
	GenerarBoleto(ctx context.Context, p *entity.PasajeDetalle) ([]byte, error)
}

// BoletoPDFUseCase genera el boleto en PDF de un pasaje emitido.
type BoletoPDFUseCase struct {
	pasajeRepo repository.PasajeRepository
	generator  BoletoGenerator
}

// NewBoletoPDFUseCase construye el caso de uso.
func NewBoletoPDFUseCase(pasajeRepo repository.PasajeRepository, generator BoletoGenerator) *BoletoPDFUseCase {
	return &BoletoPDFUseCase{pasajeRepo: pasajeRepo, generator: generator}
}

// DescargarBoleto carga el detalle del pasaje y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNoEncontrado     si el pasaje no existe.
func (uc *BoletoPDFUseCase) DescargarBoleto(ctx context.Context, codigo int64) (pdfBytes []byte, filename string, err error) {
	detalle, err := uc.pasajeRepo.DetallePorCodigo(ctx, codigo)
	if err != nil {
		return nil, "", fmt.Errorf("boleto: obtener pasaje: %w", err)
	}
	if detalle == nil {
		return nil, "", domain.ErrNoEncontrado
	}

	pdfBytes, err = uc.generator.GenerarBoleto(ctx, detalle)
	if err != nil {
		return nil, "", fmt.Errorf("boleto: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("boleto_%06d.pdf", detalle.Codigo)
	return pdfBytes, filename, nil
}
