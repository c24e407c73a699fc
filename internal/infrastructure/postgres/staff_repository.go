package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo adaptador de solo lectura sobre el personal.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// ListActive personal no archivado, con roles y tasa de comisión.
// commission_rate NULL se normaliza a 0 (sin comisión pactada).
func (r *StaffRepo) ListActive(ctx context.Context) ([]entity.StaffMember, error) {
	const query = `
		SELECT id, name, roles, monthly_salary, COALESCE(commission_rate, 0), is_archived
		FROM staff
		WHERE is_archived = false`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var staff []entity.StaffMember
	for rows.Next() {
		var person entity.StaffMember
		if err := rows.Scan(
			&person.ID, &person.Name, &person.Roles,
			&person.MonthlySalary, &person.CommissionRate, &person.IsArchived,
		); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		staff = append(staff, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staff: %w", err)
	}
	return staff, nil
}
