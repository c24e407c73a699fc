package repository

import (
	"context"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// InventoryRepository acceso de solo lectura al inventario.
type InventoryRepository interface {
	// Snapshot devuelve la foto actual del inventario indexada por ID.
	// El motor de finance costea contra esta foto (costo vigente, no histórico).
	Snapshot(ctx context.Context) (map[string]entity.InventoryItem, error)
}
