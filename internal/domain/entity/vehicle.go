package entity

import "github.com/shopspring/decimal"

// Vehicle vehículo de la flota de alquiler.
type Vehicle struct {
	ID              string
	Plate           string
	Brand           string
	Model           string
	DailyRentalCost decimal.Decimal // tarifa diaria; cero = vehículo fuera del esquema de alquiler
}
