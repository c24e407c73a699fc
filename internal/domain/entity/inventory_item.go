package entity

import "github.com/shopspring/decimal"

// InventoryItem artículo del inventario del taller (repuestos, insumos, mano de obra).
//
// UnitPrice es el costo de adquisición vigente; SellingPrice el precio de venta.
// IsService marca conceptos sin existencia física (mano de obra, diagnóstico)
// que se facturan pero no generan movimientos de stock.
type InventoryItem struct {
	ID           string
	Name         string
	Category     string
	UnitPrice    decimal.Decimal // costo vigente
	SellingPrice decimal.Decimal
	Quantity     decimal.Decimal // existencia actual
	IsService    bool
}
