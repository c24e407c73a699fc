package entity

import "github.com/shopspring/decimal"

// Driver conductor del negocio de alquiler de vehículos.
//
// ContractDate es texto ISO ("2006-01-02") con la fecha de inicio del contrato
// de alquiler; vacía o malformada se trata como "sin contrato" y no acumula
// deuda.
type Driver struct {
	ID                string
	Name              string
	ContractDate      string
	AssignedVehicleID string
	DepositAmount     decimal.Decimal
}
