package entity

import "github.com/shopspring/decimal"

// RentalPayment abono de un conductor a su alquiler acumulado.
type RentalPayment struct {
	ID          string
	DriverID    string
	PaymentDate string // texto ISO, informativo: la deuda se corta contra el total histórico
	Amount      decimal.Decimal
}
