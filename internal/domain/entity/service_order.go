package entity

import "github.com/shopspring/decimal"

// Estados de una orden de servicio del taller.
const (
	ServiceStatusRecibido   = "Recibido"
	ServiceStatusEnProceso  = "En Proceso"
	ServiceStatusCompletado = "Completado"
	ServiceStatusEntregado  = "Entregado"
	ServiceStatusCancelado  = "Cancelado"
)

// ServiceOrder orden de servicio del taller (mecánica, latonería, etc.).
//
// ServiceDate y DeliveryDateTime viajan como texto ISO; DeliveryDateTime es
// opcional (vacío si el vehículo no se ha entregado) y, cuando existe, manda
// sobre ServiceDate para ubicar la orden en un período contable.
//
// ServiceProfit lo precalcula el flujo de cierre de la orden y es autoritativo
// cuando está presente; si es nil, la utilidad se deriva como
// TotalCost − TotalSuppliesCost.
type ServiceOrder struct {
	ID                string
	ServiceDate       string
	DeliveryDateTime  string
	Status            string
	ServiceType       string // ej. "Mecánica General", "Latonería y Pintura"
	TotalCost         decimal.Decimal
	ServiceProfit     *decimal.Decimal
	TotalSuppliesCost decimal.Decimal
	Items             []ServiceOrderItem
	TechnicianID      string
	PaymentMethod     string
}

// ServiceOrderItem trabajo individual dentro de una orden, con sus insumos.
type ServiceOrderItem struct {
	Description  string
	SuppliesUsed []SupplyUsage
}

// SupplyUsage consumo de un insumo del inventario dentro de un trabajo.
type SupplyUsage struct {
	SupplyID string
	Quantity decimal.Decimal
}
