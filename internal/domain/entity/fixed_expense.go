package entity

import "github.com/shopspring/decimal"

// FixedExpense gasto fijo mensual del taller (arriendo, servicios, seguros).
type FixedExpense struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	Category string
}
