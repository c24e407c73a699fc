package finance

import (
	"github.com/shopspring/decimal"
)

// ProfitTotals acumulados de la ventana más el desglose por tipo de operación.
type ProfitTotals struct {
	Income      decimal.Decimal // Σ TotalAmount
	Profit      decimal.Decimal // Σ Profit por operación
	CostOfGoods decimal.Decimal // Σ costo base (ventas: por unidad vendida; órdenes: TotalSuppliesCost)
	ByType      map[string]TypeBreakdown
}

// TypeBreakdown subtotal de un tipo de operación ("Venta", "Mecánica General", …).
type TypeBreakdown struct {
	Income decimal.Decimal
	Profit decimal.Decimal
	Count  int
}

// CalculateProfit acumula ingresos, utilidad y costo de mercancía en una sola
// pasada sobre las operaciones ya agregadas.
//
// Para ventas el COGS se recalcula por unidad vendida contra el snapshot; para
// órdenes se toma el TotalSuppliesCost precalculado aguas arriba. Utilidad e
// ingresos-menos-costo salen del mismo recorrido, de modo que no pueden
// divergir entre vistas del reporte.
func CalculateProfit(ops []FinancialOperation, inv Snapshot) ProfitTotals {
	totals := ProfitTotals{
		Income:      decimal.Zero,
		Profit:      decimal.Zero,
		CostOfGoods: decimal.Zero,
		ByType:      make(map[string]TypeBreakdown),
	}

	for _, op := range ops {
		totals.Income = totals.Income.Add(op.TotalAmount)
		totals.Profit = totals.Profit.Add(op.Profit)
		totals.CostOfGoods = totals.CostOfGoods.Add(operationCostBasis(op, inv))

		bt := totals.ByType[op.Type]
		bt.Income = bt.Income.Add(op.TotalAmount)
		bt.Profit = bt.Profit.Add(op.Profit)
		bt.Count++
		totals.ByType[op.Type] = bt
	}

	return totals
}

// operationCostBasis costo base de una operación individual.
func operationCostBasis(op FinancialOperation, inv Snapshot) decimal.Decimal {
	switch {
	case op.Sale != nil:
		return SaleCostBasis(op.Sale.Items, inv)
	case op.Service != nil:
		return op.Service.TotalSuppliesCost
	default:
		return decimal.Zero
	}
}
