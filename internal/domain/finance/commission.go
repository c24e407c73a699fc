package finance

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// StaffCommission comisión liquidada a una persona del taller.
type StaffCommission struct {
	StaffID string
	Name    string
	Rate    decimal.Decimal
	Amount  decimal.Decimal
}

// CommissionBreakdown resultado de la liquidación de nómina y comisiones de la
// ventana del reporte.
type CommissionBreakdown struct {
	TechnicianSalaries         decimal.Decimal
	AdministrativeSalaries     decimal.Decimal
	FixedExpenses              decimal.Decimal
	NetProfitBeforeCommissions decimal.Decimal
	ProfitableForCommissions   bool
	Commissions                []StaffCommission // una entrada por persona activa con comisión > 0
	TotalCommissions           decimal.Decimal
	NetProfit                  decimal.Decimal
}

// DistributeCommissions liquida salarios, gastos fijos y comisiones contra la
// utilidad operativa de la ventana.
//
// Modelo de tasa sobre el pozo común: la compuerta de rentabilidad abre solo si
// utilidadOperativa − (salarios + gastos fijos) > 0, y entonces la tasa de CADA
// persona activa (técnica o administrativa) se aplica sobre esa utilidad neta
// total del taller, no sobre su producción individual.
//
// Personas archivadas quedan fuera de salarios y comisiones; tasa cero no
// genera entrada de comisión. Con la compuerta cerrada las comisiones son cero
// y NetProfit se reporta tal cual (puede ser negativo).
func DistributeCommissions(operationalProfit decimal.Decimal, staff []entity.StaffMember, expenses []entity.FixedExpense) CommissionBreakdown {
	result := CommissionBreakdown{
		TechnicianSalaries:     decimal.Zero,
		AdministrativeSalaries: decimal.Zero,
		FixedExpenses:          decimal.Zero,
		TotalCommissions:       decimal.Zero,
	}

	active := make([]entity.StaffMember, 0, len(staff))
	for _, person := range staff {
		if person.IsArchived {
			continue
		}
		active = append(active, person)
		if person.IsTechnician() {
			result.TechnicianSalaries = result.TechnicianSalaries.Add(person.MonthlySalary)
		} else {
			result.AdministrativeSalaries = result.AdministrativeSalaries.Add(person.MonthlySalary)
		}
	}

	for _, expense := range expenses {
		result.FixedExpenses = result.FixedExpenses.Add(expense.Amount)
	}

	totalFixed := result.TechnicianSalaries.
		Add(result.AdministrativeSalaries).
		Add(result.FixedExpenses)
	result.NetProfitBeforeCommissions = operationalProfit.Sub(totalFixed)
	result.ProfitableForCommissions = result.NetProfitBeforeCommissions.GreaterThan(decimal.Zero)

	if result.ProfitableForCommissions {
		for _, person := range active {
			if person.CommissionRate.LessThanOrEqual(decimal.Zero) {
				continue
			}
			amount := result.NetProfitBeforeCommissions.Mul(person.CommissionRate)
			result.Commissions = append(result.Commissions, StaffCommission{
				StaffID: person.ID,
				Name:    person.Name,
				Rate:    person.CommissionRate,
				Amount:  amount,
			})
			result.TotalCommissions = result.TotalCommissions.Add(amount)
		}
	}

	result.NetProfit = result.NetProfitBeforeCommissions.Sub(result.TotalCommissions)
	return result
}
