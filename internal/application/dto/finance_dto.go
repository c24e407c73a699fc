package dto

import "github.com/shopspring/decimal"

// FinancialSummaryDTO respuesta de GET /api/reportes/resumen.
//
// Resumen financiero de la ventana [desde, hasta]: ingresos y utilidad
// operativa, nómina, gastos fijos, liquidación de comisiones (modelo de tasa
// sobre el pozo común, con compuerta de rentabilidad) y desglose por tipo de
// operación. Todos los montos van redondeados a 2 decimales.
type FinancialSummaryDTO struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`

	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalProfit      decimal.Decimal `json:"total_profit"` // utilidad operativa antes de nómina
	TotalCostOfGoods decimal.Decimal `json:"total_cost_of_goods"`
	OperationCount   int             `json:"operation_count"`

	TechnicianSalaries         decimal.Decimal `json:"technician_salaries"`
	AdministrativeSalaries     decimal.Decimal `json:"administrative_salaries"`
	FixedExpenses              decimal.Decimal `json:"fixed_expenses"`
	NetProfitBeforeCommissions decimal.Decimal `json:"net_profit_before_commissions"`
	ProfitableForCommissions   bool            `json:"profitable_for_commissions"`
	TotalCommissions           decimal.Decimal `json:"total_commissions"`
	NetProfit                  decimal.Decimal `json:"net_profit"` // puede ser negativo

	Commissions []CommissionDTO         `json:"commissions"`
	ByType      map[string]BreakdownDTO `json:"breakdown_by_type"`
}

// CommissionDTO línea de comisión de una persona activa.
type CommissionDTO struct {
	StaffID string          `json:"staff_id"`
	Name    string          `json:"name"`
	Rate    decimal.Decimal `json:"rate"`
	Amount  decimal.Decimal `json:"amount"`
}

// BreakdownDTO subtotal por tipo de operación ("Venta", tipo de servicio).
type BreakdownDTO struct {
	Income decimal.Decimal `json:"income"`
	Profit decimal.Decimal `json:"profit"`
	Count  int             `json:"count"`
}

// MovementDTO salida de inventario derivada para el reporte de rotación.
type MovementDTO struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Type      string          `json:"type"` // Venta | Servicio
	RelatedID string          `json:"related_id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// DriverDebtDTO respuesta de GET /api/conductores/:id/deuda.
type DriverDebtDTO struct {
	DriverID      string          `json:"driver_id"`
	DriverName    string          `json:"driver_name"`
	DebtAmount    decimal.Decimal `json:"debt_amount"`
	DaysOwed      int64           `json:"days_owed"`
	DaysElapsed   int64           `json:"days_elapsed"`
	TotalExpected decimal.Decimal `json:"total_expected"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
}
