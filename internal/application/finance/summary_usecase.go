// Package finance contiene los casos de uso del módulo de Reportes
// Financieros: el resumen de la ventana, el libro de salidas de inventario y
// el corte de deuda de alquiler por conductor.
//
// Los casos de uso solo orquestan: cargan los snapshots vía repositorios de
// solo lectura, invocan el motor puro de internal/domain/finance y mapean a
// DTOs. Cada invocación recalcula desde cero (las vistas derivadas no se
// persisten), por lo que son idempotentes y seguras bajo llamadas concurrentes.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	domfinance "github.com/tu-usuario/taller-pro/internal/domain/finance"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// SummaryUseCase genera el resumen financiero de una ventana de fechas.
type SummaryUseCase struct {
	sales     repository.SaleRepository
	orders    repository.ServiceOrderRepository
	staff     repository.StaffRepository
	expenses  repository.FixedExpenseRepository
	inventory repository.InventoryRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(
	sales repository.SaleRepository,
	orders repository.ServiceOrderRepository,
	staff repository.StaffRepository,
	expenses repository.FixedExpenseRepository,
	inventory repository.InventoryRepository,
) *SummaryUseCase {
	return &SummaryUseCase{
		sales:     sales,
		orders:    orders,
		staff:     staff,
		expenses:  expenses,
		inventory: inventory,
	}
}

// snapshotData colecciones fuente cargadas para una invocación del reporte.
type snapshotData struct {
	sales     []entity.Sale
	orders    []entity.ServiceOrder
	staff     []entity.StaffMember
	expenses  []entity.FixedExpense
	inventory domfinance.Snapshot
}

// GetSummary construye el FinancialSummaryDTO de la ventana [desde, hasta]
// (granularidad de día, extremos inclusive).
//
// Cinco consultas en paralelo: ventas, órdenes, personal activo, gastos fijos
// y snapshot de inventario; luego el motor puro hace el resto.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, from, to time.Time) (*dto.FinancialSummaryDTO, error) {
	data, err := uc.loadSnapshot(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rango := domfinance.NewDateRange(from, to)
	ops := domfinance.AggregateOperations(data.sales, data.orders, rango, data.inventory)
	totals := domfinance.CalculateProfit(ops, data.inventory)
	liquidation := domfinance.DistributeCommissions(totals.Profit, data.staff, data.expenses)

	out := &dto.FinancialSummaryDTO{
		From:                       from.Format("2006-01-02"),
		To:                         to.Format("2006-01-02"),
		TotalIncome:                totals.Income.Round(2),
		TotalProfit:                totals.Profit.Round(2),
		TotalCostOfGoods:           totals.CostOfGoods.Round(2),
		OperationCount:             len(ops),
		TechnicianSalaries:         liquidation.TechnicianSalaries.Round(2),
		AdministrativeSalaries:     liquidation.AdministrativeSalaries.Round(2),
		FixedExpenses:              liquidation.FixedExpenses.Round(2),
		NetProfitBeforeCommissions: liquidation.NetProfitBeforeCommissions.Round(2),
		ProfitableForCommissions:   liquidation.ProfitableForCommissions,
		TotalCommissions:           liquidation.TotalCommissions.Round(2),
		NetProfit:                  liquidation.NetProfit.Round(2),
		Commissions:                make([]dto.CommissionDTO, 0, len(liquidation.Commissions)),
		ByType:                     make(map[string]dto.BreakdownDTO, len(totals.ByType)),
	}

	for _, c := range liquidation.Commissions {
		out.Commissions = append(out.Commissions, dto.CommissionDTO{
			StaffID: c.StaffID,
			Name:    c.Name,
			Rate:    c.Rate,
			Amount:  c.Amount.Round(2),
		})
	}
	for tipo, bt := range totals.ByType {
		out.ByType[tipo] = dto.BreakdownDTO{
			Income: bt.Income.Round(2),
			Profit: bt.Profit.Round(2),
			Count:  bt.Count,
		}
	}

	return out, nil
}

// loadSnapshot carga las cinco colecciones fuente en paralelo.
func (uc *SummaryUseCase) loadSnapshot(ctx context.Context, from, to time.Time) (*snapshotData, error) {
	type salesResult struct {
		sales []entity.Sale
		err   error
	}
	type ordersResult struct {
		orders []entity.ServiceOrder
		err    error
	}
	type staffResult struct {
		staff []entity.StaffMember
		err   error
	}
	type expensesResult struct {
		expenses []entity.FixedExpense
		err      error
	}
	type inventoryResult struct {
		inv map[string]entity.InventoryItem
		err error
	}

	salesCh := make(chan salesResult, 1)
	ordersCh := make(chan ordersResult, 1)
	staffCh := make(chan staffResult, 1)
	expensesCh := make(chan expensesResult, 1)
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
		p, err := uc.staff.ListActive(ctx)
		staffCh <- staffResult{p, err}
	}()
	go func() {
		g, err := uc.expenses.ListAll(ctx)
		expensesCh <- expensesResult{g, err}
	}()
	go func() {
		inv, err := uc.inventory.Snapshot(ctx)
		invCh <- inventoryResult{inv, err}
	}()

	sales := <-salesCh
	orders := <-ordersCh
	staff := <-staffCh
	expenses := <-expensesCh
	inv := <-invCh

	if sales.err != nil {
		return nil, fmt.Errorf("resumen: ventas: %w", sales.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("resumen: órdenes: %w", orders.err)
	}
	if staff.err != nil {
		return nil, fmt.Errorf("resumen: personal: %w", staff.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("resumen: gastos fijos: %w", expenses.err)
	}
	if inv.err != nil {
		return nil, fmt.Errorf("resumen: inventario: %w", inv.err)
	}

	return &snapshotData{
		sales:     sales.sales,
		orders:    orders.orders,
		staff:     staff.staff,
		expenses:  expenses.expenses,
		inventory: domfinance.Snapshot(inv.inv),
	}, nil
}
