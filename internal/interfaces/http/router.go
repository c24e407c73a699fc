package http

import (
	"github.com/gofiber/fiber/v2"
	appfinance "github.com/tu-usuario/taller-pro/internal/application/finance"
	"github.com/tu-usuario/taller-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SummaryUC   *appfinance.SummaryUseCase
	MovementsUC *appfinance.MovementsUseCase
	DebtUC      *appfinance.DriverDebtUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API de reportes.
//
// La autenticación vive en el gateway de la suite, aguas arriba de este
// servicio; aquí solo se exponen las consultas derivadas (todas read-only).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestID())

	reports := api.Group("/reportes")
	reportHandler := NewReportHandler(deps.SummaryUC, deps.MovementsUC, deps.Log)
	reports.Get("/resumen", reportHandler.GetSummary)
	reports.Get("/movimientos", reportHandler.ListMovements)

	drivers := api.Group("/conductores")
	rentalHandler := NewRentalHandler(deps.DebtUC, deps.Log)
	drivers.Get("/:id/deuda", rentalHandler.GetDebt)
}
