package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo adaptador de solo lectura sobre el inventario.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Snapshot foto actual del inventario indexada por ID, contra la que el motor
// de finance costea ventas e insumos.
func (r *InventoryRepo) Snapshot(ctx context.Context) (map[string]entity.InventoryItem, error) {
	const query = `
		SELECT id, name, COALESCE(category, ''), unit_price, selling_price, quantity, is_service
		FROM inventory_items`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("inventory snapshot: %w", err)
	}
	defer rows.Close()

	snapshot := make(map[string]entity.InventoryItem)
	for rows.Next() {
		var item entity.InventoryItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category,
			&item.UnitPrice, &item.SellingPrice, &item.Quantity, &item.IsService,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		snapshot[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return snapshot, nil
}
