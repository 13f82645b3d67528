package postgres

import (
	"context"
	"fmt"

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
	"github.com/Teamwawa12/ProyectoBus/internal/domain/repository"
)

var _ repository.RutaRepository = (*RutaRepo)(nil)

// RutaRepo implementación del puerto RutaRepository sobre PostgreSQL.
type RutaRepo struct {
	db Querier
}

// NewRutaRepository construye el adaptador.
func NewRutaRepository(db Querier) *RutaRepo {
	return &RutaRepo{db: db}
}

// Listar devuelve todas las rutas ordenadas por origen y destino.
func (r *RutaRepo) Listar(ctx context.Context) ([]entity.Ruta, error) {
	query := `
		SELECT codigo, origen, destino, costo_referencial
		FROM rutas
		ORDER BY origen, destino`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rutas: %w", err)
	}
	defer rows.Close()
	var list []entity.Ruta
	for rows.Next() {
		var rt entity.Ruta
		if err := rows.Scan(&rt.Codigo, &rt.Origen, &rt.Destino, &rt.CostoReferencial); err != nil {
			return nil, fmt.Errorf("scan ruta: %w", err)
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}
