package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// Tipos de movimiento de salida de inventario.
const (
	MovementTypeVenta    = "Venta"
	MovementTypeServicio = "Servicio"
)

// StockMovement evento derivado de consumo de inventario: una unidad de reporte
// por línea de venta o insumo de orden. No muta existencias; es una vista para
// el análisis de rotación.
type StockMovement struct {
	Date      time.Time
	Type      string // Venta o Servicio
	RelatedID string // ID de la venta u orden de origen
	ItemID    string
	ItemName  string
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal // Quantity × UnitCost
}

// TrackMovements deriva el libro de salidas de inventario de la ventana.
//
// Aplica los mismos filtros de estado y fecha que AggregateOperations y emite
// un movimiento por cada línea cuyo artículo exista en el snapshot y no sea un
// concepto de servicio (IsService). Artículos eliminados o de servicio se
// omiten sin error.
func TrackMovements(sales []entity.Sale, orders []entity.ServiceOrder, rango DateRange, inv Snapshot) []StockMovement {
	var movements []StockMovement

	for i := range sales {
		sale := &sales[i]
		if sale.Status == entity.SaleStatusCancelado {
			continue
		}
		fecha, ok := ParseDate(sale.Date)
		if !ok || !rango.Contains(fecha) {
			continue
		}
		for _, line := range sale.Items {
			art, ok := inv[line.InventoryItemID]
			if !ok || art.IsService {
				continue
			}
			movements = append(movements, StockMovement{
				Date:      fecha,
				Type:      MovementTypeVenta,
				RelatedID: sale.ID,
				ItemID:    art.ID,
				ItemName:  art.Name,
				Quantity:  line.Quantity,
				UnitCost:  art.UnitPrice,
				TotalCost: line.Quantity.Mul(art.UnitPrice),
			})
		}
	}

	for i := range orders {
		order := &orders[i]
		if order.Status != entity.ServiceStatusCompletado && order.Status != entity.ServiceStatusEntregado {
			continue
		}
		fecha, ok := orderDate(order)
		if !ok || !rango.Contains(fecha) {
			continue
		}
		for _, job := range order.Items {
			for _, supply := range job.SuppliesUsed {
				art, ok := inv[supply.SupplyID]
				if !ok || art.IsService {
					continue
				}
				movements = append(movements, StockMovement{
					Date:      fecha,
					Type:      MovementTypeServicio,
					RelatedID: order.ID,
					ItemID:    art.ID,
					ItemName:  art.Name,
					Quantity:  supply.Quantity,
					UnitCost:  art.UnitPrice,
					TotalCost: supply.Quantity.Mul(art.UnitPrice),
				})
			}
		}
	}

	return movements
}
