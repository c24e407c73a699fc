package entity

import "github.com/shopspring/decimal"

// Estados de una venta de mostrador (POS).
const (
	SaleStatusCompletado = "Completado"
	SaleStatusCancelado  = "Cancelado"
	SaleStatusPendiente  = "Pendiente"
)

// Sale representa un recibo de venta de mostrador tal como lo escribe el POS.
//
// Date viaja como texto ISO ("2006-01-02" o RFC3339) porque el POS guarda la
// fecha tal cual; el motor de reportes la interpreta de forma tolerante y
// descarta el registro si no es parseable.
type Sale struct {
	ID            string
	Date          string
	Status        string // Completado, Cancelado, Pendiente
	Items         []SaleItem
	TotalAmount   decimal.Decimal
	PaymentMethod string // Efectivo, Tarjeta, Transferencia
}

// SaleItem línea de venta. TotalPrice = Quantity × UnitPrice (precalculado por el POS).
type SaleItem struct {
	InventoryItemID string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal // precio de venta unitario al momento de la venta
	TotalPrice      decimal.Decimal
}
