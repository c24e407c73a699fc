package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.FixedExpenseRepository = (*FixedExpenseRepo)(nil)

// FixedExpenseRepo adaptador de solo lectura sobre los gastos fijos mensuales.
type FixedExpenseRepo struct {
	q Querier
}

// NewFixedExpenseRepository construye el adaptador.
func NewFixedExpenseRepository(q Querier) *FixedExpenseRepo {
	return &FixedExpenseRepo{q: q}
}

// ListAll todos los gastos fijos registrados.
func (r *FixedExpenseRepo) ListAll(ctx context.Context) ([]entity.FixedExpense, error) {
	const query = `
		SELECT id, name, amount, COALESCE(category, '')
		FROM fixed_expenses`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fixed expenses: %w", err)
	}
	defer rows.Close()

	var expenses []entity.FixedExpense
	for rows.Next() {
		var expense entity.FixedExpense
		if err := rows.Scan(&expense.ID, &expense.Name, &expense.Amount, &expense.Category); err != nil {
			return nil, fmt.Errorf("scan fixed expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fixed expenses: %w", err)
	}
	return expenses, nil
}
