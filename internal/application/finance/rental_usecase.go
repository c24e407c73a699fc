package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/taller-pro/internal/application/dto"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	domfinance "github.com/tu-usuario/taller-pro/internal/domain/finance"
	"github.com/tu-usuario/taller-pro/internal/domain/repository"
)

// DriverDebtUseCase corta la deuda de alquiler de un conductor.
type DriverDebtUseCase struct {
	rentals repository.RentalRepository
	now     func() time.Time
}

// NewDriverDebtUseCase construye el caso de uso con reloj de sistema.
func NewDriverDebtUseCase(rentals repository.RentalRepository) *DriverDebtUseCase {
	return &DriverDebtUseCase{rentals: rentals, now: time.Now}
}

// GetDriverDebt calcula la deuda acumulada del conductor contra su historial
// completo de pagos.
//
// Conductor inexistente → domain.ErrDriverNotFound. Conductor sin vehículo
// asignado o con vehículo ya eliminado no es un error: la deuda corta en cero
// (sin tarifa diaria no hay acumulación).
func (uc *DriverDebtUseCase) GetDriverDebt(ctx context.Context, driverID string) (*dto.DriverDebtDTO, error) {
	driver, err := uc.rentals.GetDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("deuda: conductor %s: %w", driverID, err)
	}
	if driver == nil {
		return nil, domain.ErrDriverNotFound
	}

	var vehicle entity.Vehicle
	if driver.AssignedVehicleID != "" {
		v, err := uc.rentals.GetVehicle(ctx, driver.AssignedVehicleID)
		if err != nil {
			return nil, fmt.Errorf("deuda: vehículo %s: %w", driver.AssignedVehicleID, err)
		}
		if v != nil {
			vehicle = *v
		}
	}

	payments, err := uc.rentals.ListPayments(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("deuda: pagos de %s: %w", driverID, err)
	}

	debt := domfinance.CalculateDriverDebt(*driver, vehicle, payments, uc.now())

	return &dto.DriverDebtDTO{
		DriverID:      driver.ID,
		DriverName:    driver.Name,
		DebtAmount:    debt.Debt.Round(2),
		DaysOwed:      debt.DaysOwed,
		DaysElapsed:   debt.DaysElapsed,
		TotalExpected: debt.TotalExpected.Round(2),
		TotalPaid:     debt.TotalPaid.Round(2),
	}, nil
}
