package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	appfinance "github.com/tu-usuario/taller-pro/internal/application/finance"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/pkg/logger"
)

// RentalHandler maneja los endpoints de alquiler de la flota.
type RentalHandler struct {
	debtUC *appfinance.DriverDebtUseCase
	log    *logger.Logger
}

// NewRentalHandler construye el handler.
func NewRentalHandler(debtUC *appfinance.DriverDebtUseCase, log *logger.Logger) *RentalHandler {
	return &RentalHandler{debtUC: debtUC, log: log}
}

// GetDebt devuelve el corte de deuda de alquiler de un conductor.
// GET /api/conductores/:id/deuda
func (h *RentalHandler) GetDebt(c *fiber.Ctx) error {
	driverID := c.Params("id")
	if driverID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: "id de conductor requerido",
		})
	}

	debt, err := h.debtUC.GetDriverDebt(c.Context(), driverID)
	if err != nil {
		if errors.Is(err, domain.ErrDriverNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "conductor no encontrado",
			})
		}
		h.log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("driver_id", driverID).
			Msg("corte de deuda")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(debt)
}
