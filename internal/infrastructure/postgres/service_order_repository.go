package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepo)(nil)

// ServiceOrderRepo adaptador de solo lectura sobre las órdenes de servicio.
type ServiceOrderRepo struct {
	q Querier
}

// NewServiceOrderRepository construye el adaptador.
func NewServiceOrderRepository(q Querier) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q}
}

// serviceOrderItemDoc trabajo e insumos tal como viajan en el documento JSONB.
type serviceOrderItemDoc struct {
	Description  string          `json:"description"`
	SuppliesUsed []supplyUsedDoc `json:"suppliesUsed"`
}

type supplyUsedDoc struct {
	SupplyID string          `json:"supplyId"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ListByDateRange órdenes cuya fecha contable (entrega si existe, si no la de
// servicio) cae en [from, to] a granularidad de día. Pre-filtro grueso; el
// corte fino y la exclusión de fechas malformadas los hace el motor.
func (r *ServiceOrderRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.ServiceOrder, error) {
	const query = `
		SELECT id, service_date, COALESCE(delivery_date_time, ''), status, service_type,
		       total_cost, service_profit, total_supplies_cost, items,
		       COALESCE(technician_id, ''), COALESCE(payment_method, '')
		FROM service_orders
		WHERE substr(COALESCE(NULLIF(delivery_date_time, ''), service_date), 1, 10) BETWEEN $1 AND $2`

	rows, err := r.q.Query(ctx, query, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.ServiceOrder
	for rows.Next() {
		var order entity.ServiceOrder
		var itemsRaw []byte
		if err := rows.Scan(
			&order.ID, &order.ServiceDate, &order.DeliveryDateTime, &order.Status,
			&order.ServiceType, &order.TotalCost, &order.ServiceProfit,
			&order.TotalSuppliesCost, &itemsRaw, &order.TechnicianID, &order.PaymentMethod,
		); err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		if len(itemsRaw) > 0 {
			var docs []serviceOrderItemDoc
			if err := json.Unmarshal(itemsRaw, &docs); err != nil {
				return nil, fmt.Errorf("decode service items %s: %w", order.ID, err)
			}
			order.Items = make([]entity.ServiceOrderItem, 0, len(docs))
			for _, d := range docs {
				item := entity.ServiceOrderItem{Description: d.Description}
				for _, s := range d.SuppliesUsed {
					item.SuppliesUsed = append(item.SuppliesUsed, entity.SupplyUsage{
						SupplyID: s.SupplyID,
						Quantity: s.Quantity,
					})
				}
				order.Items = append(order.Items, item)
			}
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service orders: %w", err)
	}
	return orders, nil
}
