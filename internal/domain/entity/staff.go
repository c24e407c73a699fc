package entity

import "github.com/shopspring/decimal"

// RoleTecnico rol que determina la bolsa de nómina de técnicos; cualquier otro
// conjunto de roles cae en la bolsa administrativa.
const RoleTecnico = "Técnico"

// StaffMember miembro del personal del taller.
//
// CommissionRate es una fracción 0–1 aplicada sobre la utilidad neta total del
// taller (modelo de tasa sobre el pozo común, no sobre producción individual).
// Cero significa sin comisión pactada.
type StaffMember struct {
	ID             string
	Name           string
	Roles          []string
	MonthlySalary  decimal.Decimal
	CommissionRate decimal.Decimal
	IsArchived     bool // excluido de nómina y comisiones
}

// IsTechnician indica si la persona pertenece a la bolsa de técnicos para
// efectos de nómina (presencia del rol "Técnico", excluyente).
func (s StaffMember) IsTechnician() bool {
	for _, r := range s.Roles {
		if r == RoleTecnico {
			return true
		}
	}
	return false
}
