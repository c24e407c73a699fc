package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

var _ repository.RentalRepository = (*RentalRepo)(nil)

// RentalRepo adaptador de solo lectura sobre el negocio de alquiler:
// conductores, vehículos de la flota y abonos.
type RentalRepo struct {
	q Querier
}

// NewRentalRepository construye el adaptador.
func NewRentalRepository(q Querier) *RentalRepo {
	return &RentalRepo{q: q}
}

// GetDriver devuelve (nil, nil) si el conductor no existe.
func (r *RentalRepo) GetDriver(ctx context.Context, id string) (*entity.Driver, error) {
	const query = `
		SELECT id, name, COALESCE(contract_date, ''), COALESCE(assigned_vehicle_id, ''), deposit_amount
		FROM drivers WHERE id = $1`

	var driver entity.Driver
	err := r.q.QueryRow(ctx, query, id).Scan(
		&driver.ID, &driver.Name, &driver.ContractDate,
		&driver.AssignedVehicleID, &driver.DepositAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &driver, nil
}

// GetVehicle devuelve (nil, nil) si el vehículo no existe.
func (r *RentalRepo) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	const query = `
		SELECT id, plate, COALESCE(brand, ''), COALESCE(model, ''), daily_rental_cost
		FROM vehicles WHERE id = $1`

	var vehicle entity.Vehicle
	err := r.q.QueryRow(ctx, query, id).Scan(
		&vehicle.ID, &vehicle.Plate, &vehicle.Brand, &vehicle.Model, &vehicle.DailyRentalCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &vehicle, nil
}

// ListPayments historial completo de abonos del conductor; la deuda se corta
// contra el total histórico, sin ventana de fechas.
func (r *RentalRepo) ListPayments(ctx context.Context, driverID string) ([]entity.RentalPayment, error) {
	const query = `
		SELECT id, driver_id, COALESCE(payment_date, ''), amount
		FROM rental_payments
		WHERE driver_id = $1`

	rows, err := r.q.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []entity.RentalPayment
	for rows.Next() {
		var payment entity.RentalPayment
		if err := rows.Scan(&payment.ID, &payment.DriverID, &payment.PaymentDate, &payment.Amount); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}
