package finance

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// Snapshot vista id → artículo del inventario al momento del reporte.
//
// El costo base se calcula contra el costo vigente del artículo, no contra el
// costo histórico al momento de la transacción; un artículo eliminado del
// inventario aporta costo cero (subestima COGS de forma deliberada y conocida).
type Snapshot map[string]entity.InventoryItem

// SaleCostBasis costo de mercancía vendida de una venta: Σ(cantidad × costo vigente).
// Líneas cuyo artículo ya no existe en el snapshot aportan cero.
func SaleCostBasis(items []entity.SaleItem, inv Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, line := range items {
		art, ok := inv[line.InventoryItemID]
		if !ok {
			continue
		}
		total = total.Add(line.Quantity.Mul(art.UnitPrice))
	}
	return total
}

// ServiceSuppliesCost costo de los insumos consumidos por una orden, recorriendo
// los trabajos y sus insumos contra el costo vigente del snapshot.
func ServiceSuppliesCost(items []entity.ServiceOrderItem, inv Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, job := range items {
		for _, supply := range job.SuppliesUsed {
			art, ok := inv[supply.SupplyID]
			if !ok {
				continue
			}
			total = total.Add(supply.Quantity.Mul(art.UnitPrice))
		}
	}
	return total
}
