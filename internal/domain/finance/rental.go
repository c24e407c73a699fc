package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// DriverDebt corte de deuda de alquiler de un conductor a una fecha dada.
type DriverDebt struct {
	Debt          decimal.Decimal // max(0, esperado − pagado)
	DaysOwed      int64           // floor(deuda / tarifa diaria); 0 si no hay deuda
	DaysElapsed   int64           // días de contrato transcurridos, extremos inclusive
	TotalExpected decimal.Decimal
	TotalPaid     decimal.Decimal
}

// CalculateDriverDebt corta la deuda acumulada de un conductor contra su
// historial completo de pagos (sin ventana de fechas: suma histórica).
//
// hoy llega explícito para mantener el cálculo puro y determinista; el
// llamador pasa time.Now().
//
// Casos degenerados, todos a deuda cero sin error: sin fecha de contrato o
// fecha malformada, tarifa diaria cero o negativa, contrato que inicia en el
// futuro. El día de inicio y el día de hoy cuentan ambos (diferencia de
// calendario + 1). La deuda se recorta en cero: los sobrepagos no generan
// saldo a favor.
func CalculateDriverDebt(driver entity.Driver, vehicle entity.Vehicle, payments []entity.RentalPayment, hoy time.Time) DriverDebt {
	zero := DriverDebt{
		Debt:          decimal.Zero,
		TotalExpected: decimal.Zero,
		TotalPaid:     decimal.Zero,
	}

	if vehicle.DailyRentalCost.LessThanOrEqual(decimal.Zero) {
		return zero
	}
	contractStart, ok := ParseDate(driver.ContractDate)
	if !ok {
		return zero
	}

	// Comparación por fecha de calendario: el contrato se parsea en UTC pero
	// hoy llega en la zona del llamador; normalizar ambos por componentes
	// Y/M/D evita perder un día cuando las medianoches no coinciden.
	startDay := civilDate(contractStart)
	today := civilDate(hoy)
	if startDay.After(today) {
		return zero
	}

	daysElapsed := int64(today.Sub(startDay).Hours()/24) + 1
	expected := vehicle.DailyRentalCost.Mul(decimal.NewFromInt(daysElapsed))

	paid := decimal.Zero
	for _, payment := range payments {
		paid = paid.Add(payment.Amount)
	}

	debt := expected.Sub(paid)
	if debt.LessThanOrEqual(decimal.Zero) {
		return DriverDebt{
			Debt:          decimal.Zero,
			DaysElapsed:   daysElapsed,
			TotalExpected: expected,
			TotalPaid:     paid,
		}
	}

	return DriverDebt{
		Debt:          debt,
		DaysOwed:      debt.Div(vehicle.DailyRentalCost).Floor().IntPart(),
		DaysElapsed:   daysElapsed,
		TotalExpected: expected,
		TotalPaid:     paid,
	}
}

// civilDate proyecta un instante a su fecha de calendario en UTC, descartando
// hora y zona.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
