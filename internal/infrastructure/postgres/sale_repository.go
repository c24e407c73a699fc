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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adaptador de solo lectura sobre los recibos de venta del POS.
//
// El POS guarda las fechas como texto ISO y las líneas como documento JSONB;
// aquí solo se hace un pre-filtro grueso por día (substr lexicográfico sobre
// el ISO) y el motor de finance aplica el corte autoritativo.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// saleItemDoc línea de venta tal como viaja en el documento JSONB.
type saleItemDoc struct {
	InventoryItemID string          `json:"inventoryItemId"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

// ListByDateRange ventas cuya fecha (día ISO) cae en [from, to].
func (r *SaleRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	const query = `
		SELECT id, sale_date, status, items, total_amount, payment_method
		FROM sales
		WHERE substr(sale_date, 1, 10) BETWEEN $1 AND $2`

	rows, err := r.q.Query(ctx, query, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []entity.Sale
	for rows.Next() {
		var sale entity.Sale
		var itemsRaw []byte
		if err := rows.Scan(
			&sale.ID, &sale.Date, &sale.Status, &itemsRaw,
			&sale.TotalAmount, &sale.PaymentMethod,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if len(itemsRaw) > 0 {
			var docs []saleItemDoc
			if err := json.Unmarshal(itemsRaw, &docs); err != nil {
				return nil, fmt.Errorf("decode sale items %s: %w", sale.ID, err)
			}
			sale.Items = make([]entity.SaleItem, 0, len(docs))
			for _, d := range docs {
				sale.Items = append(sale.Items, entity.SaleItem{
					InventoryItemID: d.InventoryItemID,
					Quantity:        d.Quantity,
					UnitPrice:       d.UnitPrice,
					TotalPrice:      d.TotalPrice,
				})
			}
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}
