// Package finance contiene el motor puro de agregación financiera y deuda de
// alquiler del taller: normaliza ventas y órdenes de servicio en operaciones,
// calcula utilidad y COGS sobre una ventana de fechas, reparte comisiones con
// compuerta de rentabilidad y corta la deuda de alquiler por conductor.
//
// Todo el paquete es funcional puro sobre snapshots que entrega el llamador:
// no hay estado interno, ni I/O, ni errores fatales — los datos malos se
// excluyen en silencio (ver taxonomía de fallos en cada función).
package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// OperationTypeVenta tipo de operación para ventas de mostrador; las órdenes
// de servicio usan su ServiceType como tipo.
const OperationTypeVenta = "Venta"

// FinancialOperation evento financiero normalizado (venta u orden entregada).
//
// Es una vista derivada: se reconstruye desde cero en cada invocación del
// reporte y nunca se persiste. Sale o Service referencia el registro de origen
// (exactamente uno es no-nil).
type FinancialOperation struct {
	ID          string
	Type        string // "Venta" o el tipo de servicio de la orden
	Date        time.Time
	Description string
	TotalAmount decimal.Decimal
	Profit      decimal.Decimal
	Sale        *entity.Sale
	Service     *entity.ServiceOrder
}

// Key clave compuesta (tipo, id): los IDs pueden repetirse entre la colección
// de ventas y la de órdenes.
func (op FinancialOperation) Key() string {
	return op.Type + ":" + op.ID
}

// AggregateOperations fusiona ventas y órdenes de servicio en operaciones
// financieras dentro de la ventana dada.
//
// Ventas: entran con estado distinto de Cancelado y fecha dentro del rango.
// Órdenes: entran con estado Completado o Entregado, fechadas por
// DeliveryDateTime cuando existe y por ServiceDate en su defecto.
//
// Registros con fecha ausente o malformada se excluyen en silencio (se tratan
// como fuera de rango). La función no muta las colecciones de entrada y no
// garantiza ningún orden en la salida; los llamadores ordenan aparte.
func AggregateOperations(sales []entity.Sale, orders []entity.ServiceOrder, rango DateRange, inv Snapshot) []FinancialOperation {
	ops := make([]FinancialOperation, 0, len(sales)+len(orders))

	for i := range sales {
		sale := &sales[i]
		if sale.Status == entity.SaleStatusCancelado {
			continue
		}
		fecha, ok := ParseDate(sale.Date)
		if !ok || !rango.Contains(fecha) {
			continue
		}
		ops = append(ops, FinancialOperation{
			ID:          sale.ID,
			Type:        OperationTypeVenta,
			Date:        fecha,
			Description: saleDescription(sale),
			TotalAmount: sale.TotalAmount,
			Profit:      sale.TotalAmount.Sub(SaleCostBasis(sale.Items, inv)),
			Sale:        sale,
		})
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
		ops = append(ops, FinancialOperation{
			ID:          order.ID,
			Type:        order.ServiceType,
			Date:        fecha,
			Description: orderDescription(order),
			TotalAmount: order.TotalCost,
			Profit:      serviceProfit(order),
			Service:     order,
		})
	}

	return ops
}

// orderDate fecha contable de la orden: entrega si existe, si no la de servicio.
func orderDate(order *entity.ServiceOrder) (time.Time, bool) {
	if order.DeliveryDateTime != "" {
		if t, ok := ParseDate(order.DeliveryDateTime); ok {
			return t, true
		}
		// Fecha de entrega malformada: caer a la fecha de servicio.
	}
	return ParseDate(order.ServiceDate)
}

// serviceProfit utilidad de una orden: el ServiceProfit precalculado por el
// cierre de la orden es autoritativo; si falta, se deriva del costo de insumos.
func serviceProfit(order *entity.ServiceOrder) decimal.Decimal {
	if order.ServiceProfit != nil {
		return *order.ServiceProfit
	}
	return order.TotalCost.Sub(order.TotalSuppliesCost)
}

func saleDescription(sale *entity.Sale) string {
	return "Venta de mostrador #" + sale.ID
}

func orderDescription(order *entity.ServiceOrder) string {
	return order.ServiceType + " — orden #" + order.ID
}
