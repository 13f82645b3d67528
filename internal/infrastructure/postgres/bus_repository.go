package postgres

import (
	"context"
	"fmt"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

var _ repository.BusRepository = (*BusRepo)(nil)

// BusRepo implementación del puerto BusRepository sobre PostgreSQL.
type BusRepo struct {
	db Querier
}

// NewBusRepository construye el adaptador.
func NewBusRepository(db Querier) *BusRepo {
	return &BusRepo{db: db}
}

// Listar devuelve la flota completa ordenada por placa.
func (r *BusRepo) Listar(ctx context.Context) ([]entity.Bus, error) {
	query := `
		SELECT codigo, placa, fabricante, num_asientos, estado
		FROM buses
		ORDER BY placa`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	defer rows.Close()
	var list []entity.Bus
	for rows.Next() {
		var b entity.Bus
		if err := rows.Scan(&b.Codigo, &b.Placa, &b.Fabricante, &b.NumAsientos, &b.Estado); err != nil {
			return nil, fmt.Errorf("scan bus: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
