package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/taller-pro/internal/application/dto"
	appfinance "github.com/tu-usuario/taller-pro/internal/application/finance"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/pkg/logger"
)

const queryDateLayout = "2006-01-02"

// ReportHandler maneja los endpoints del módulo de Reportes Financieros.
type ReportHandler struct {
	summaryUC   *appfinance.SummaryUseCase
	movementsUC *appfinance.MovementsUseCase
	log         *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(summaryUC *appfinance.SummaryUseCase, movementsUC *appfinance.MovementsUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{summaryUC: summaryUC, movementsUC: movementsUC, log: log}
}

// GetSummary devuelve el resumen financiero de la ventana.
// GET /api/reportes/resumen?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
//
// Sin parámetros, la ventana por defecto es el mes en curso (día 1 – hoy).
// Parámetros presentes pero malformados → 400.
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_RANGE", Message: err.Error(),
		})
	}

	summary, err := h.summaryUC.GetSummary(c.Context(), from, to)
	if err != nil {
		h.log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Msg("resumen financiero")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// ListMovements devuelve las salidas de inventario de la ventana.
// GET /api/reportes/movimientos?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func (h *ReportHandler) ListMovements(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_RANGE", Message: err.Error(),
		})
	}

	movements, err := h.movementsUC.ListMovements(c.Context(), from, to)
	if err != nil {
		h.log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Msg("movimientos de inventario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(movements)
}

// parseRange interpreta desde/hasta. Por defecto: mes en curso (día 1 – hoy),
// misma convención del dashboard de la suite. Todo fallo envuelve
// domain.ErrInvalidRange; desde > hasta también es 400.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("desde"); raw != "" {
		parsed, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: desde %q, se espera YYYY-MM-DD", domain.ErrInvalidRange, raw)
		}
		from = parsed
	}
	if raw := c.Query("hasta"); raw != "" {
		parsed, err := time.Parse(queryDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: hasta %q, se espera YYYY-MM-DD", domain.ErrInvalidRange, raw)
		}
		to = parsed
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: desde no puede ser posterior a hasta", domain.ErrInvalidRange)
	}
	return from, to, nil
}
