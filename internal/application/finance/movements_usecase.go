package finance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	domfinance "github.com/tu-usuario/taller-pro/internal/domain/finance"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// MovementsUseCase deriva el libro de salidas de inventario de una ventana.
type MovementsUseCase struct {
	sales     repository.SaleRepository
	orders    repository.ServiceOrderRepository
	inventory repository.InventoryRepository
}

// NewMovementsUseCase construye el caso de uso.
func NewMovementsUseCase(
	sales repository.SaleRepository,
	orders repository.ServiceOrderRepository,
	inventory repository.InventoryRepository,
) *MovementsUseCase {
	return &MovementsUseCase{sales: sales, orders: orders, inventory: inventory}
}

// ListMovements devuelve las salidas de inventario de [desde, hasta],
// ordenadas por fecha ascendente (y por origen para una salida estable).
func (uc *MovementsUseCase) ListMovements(ctx context.Context, from, to time.Time) ([]dto.MovementDTO, error) {
	type salesResult struct {
		sales []entity.Sale
		err   error
	}
	type ordersResult struct {
		orders []entity.ServiceOrder
		err    error
	}
	type inventoryResult struct {
		inv map[string]entity.InventoryItem
		err error
	}

	salesCh := make(chan salesResult, 1)
	ordersCh := make(chan ordersResult, 1)
	invCh := make(chan inventoryResult, 1)

	go func() {
		s, err := uc.sales.ListByDateRange(ctx, from, to)
		salesCh <- salesResult{s, err}
	}()
	go func() {
		o, err := uc.orders.ListByDateRange(ctx, from, to)
		ordersCh <- ordersResult{o, err}
	}()
	go func() {
		inv, err := uc.inventory.Snapshot(ctx)
		invCh <- inventoryResult{inv, err}
	}()

	sales := <-salesCh
	orders := <-ordersCh
	inv := <-invCh

	if sales.err != nil {
		return nil, fmt.Errorf("movimientos: ventas: %w", sales.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("movimientos: órdenes: %w", orders.err)
	}
	if inv.err != nil {
		return nil, fmt.Errorf("movimientos: inventario: %w", inv.err)
	}

	rango := domfinance.NewDateRange(from, to)
	movements := domfinance.TrackMovements(sales.sales, orders.orders, rango, domfinance.Snapshot(inv.inv))

	sort.Slice(movements, func(i, j int) bool {
		if !movements[i].Date.Equal(movements[j].Date) {
			return movements[i].Date.Before(movements[j].Date)
		}
		if movements[i].RelatedID != movements[j].RelatedID {
			return movements[i].RelatedID < movements[j].RelatedID
		}
		return movements[i].ItemID < movements[j].ItemID
	})

	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementDTO{
			Date:      m.Date.Format("2006-01-02"),
			Type:      m.Type,
			RelatedID: m.RelatedID,
			ItemID:    m.ItemID,
			ItemName:  m.ItemName,
			Quantity:  m.Quantity,
			UnitCost:  m.UnitCost.Round(2),
			TotalCost: m.TotalCost.Round(2),
		})
	}
	return out, nil
}
