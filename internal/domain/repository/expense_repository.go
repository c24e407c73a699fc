package repository

import (
	"context"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// FixedExpenseRepository acceso de solo lectura a los gastos fijos mensuales.
type FixedExpenseRepository interface {
	ListAll(ctx context.Context) ([]entity.FixedExpense, error)
}
