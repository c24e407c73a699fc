package repository

import (
	"context"

	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// RentalRepository acceso de solo lectura al negocio de alquiler: conductores,
// vehículos y abonos.
type RentalRepository interface {
	// GetDriver devuelve (nil, nil) si el conductor no existe.
	GetDriver(ctx context.Context, id string) (*entity.Driver, error)
	// GetVehicle devuelve (nil, nil) si el vehículo no existe.
	GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error)
	// ListPayments historial completo de abonos del conductor (sin ventana).
	ListPayments(ctx context.Context, driverID string) ([]entity.RentalPayment, error)
}
