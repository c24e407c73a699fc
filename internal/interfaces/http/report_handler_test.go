package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appfinance "github.com/tu-usuario/taller-pro/internal/application/finance"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/taller-pro/internal/interfaces/http"
	"github.com/tu-usuario/taller-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Contorno HTTP del módulo de reportes: parseo del rango, códigos de estado y
// cuerpo JSON, contra repositorios en memoria.
// ──────────────────────────────────────────────────────────────────────────────

type memSales struct{ sales []entity.Sale }

func (m *memSales) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	return m.sales, nil
}

type memOrders struct{}

func (m *memOrders) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.ServiceOrder, error) {
	return nil, nil
}

type memStaff struct{}

func (m *memStaff) ListActive(ctx context.Context) ([]entity.StaffMember, error) { return nil, nil }

type memExpenses struct{}

func (m *memExpenses) ListAll(ctx context.Context) ([]entity.FixedExpense, error) { return nil, nil }

type memInventory struct{}

func (m *memInventory) Snapshot(ctx context.Context) (map[string]entity.InventoryItem, error) {
	return map[string]entity.InventoryItem{}, nil
}

type memRentals struct{}

func (m *memRentals) GetDriver(ctx context.Context, id string) (*entity.Driver, error) {
	return nil, nil
}
func (m *memRentals) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	return nil, nil
}
func (m *memRentals) ListPayments(ctx context.Context, driverID string) ([]entity.RentalPayment, error) {
	return nil, nil
}

func buildTestApp() *fiber.App {
	sales := &memSales{sales: []entity.Sale{
		{ID: "v1", Date: "2026-06-10", Status: entity.SaleStatusCompletado,
			TotalAmount: decimal.NewFromInt(100)},
	}}
	summaryUC := appfinance.NewSummaryUseCase(sales, &memOrders{}, &memStaff{}, &memExpenses{}, &memInventory{})
	movementsUC := appfinance.NewMovementsUseCase(sales, &memOrders{}, &memInventory{})
	debtUC := appfinance.NewDriverDebtUseCase(&memRentals{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SummaryUC:   summaryUC,
		MovementsUC: movementsUC,
		DebtUC:      debtUC,
		Log:         logger.New(logger.Config{Level: "error"}),
	})
	return app
}

func TestGetSummary_RangoExplicito(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/resumen?desde=2026-06-01&hasta=2026-06-30", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2026-06-01", body["from"])
	assert.Equal(t, "2026-06-30", body["to"])
	assert.Equal(t, "100", body["total_income"])
}

func TestGetSummary_FechaInvalidaRetorna400(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/resumen?desde=10-06-2026", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_RANGE", body["code"])
	assert.Contains(t, body["message"], "rango de fechas inválido")
}

func TestGetSummary_DesdePosteriorAHastaRetorna400(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/resumen?desde=2026-07-01&hasta=2026-06-01", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_RANGE", body["code"])
}

func TestGetDebt_ConductorInexistenteRetorna404(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/conductores/nadie/deuda", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestID_SePropagaEnLaRespuesta(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/movimientos", nil)
	req.Header.Set("X-Request-Id", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-123", resp.Header.Get("X-Request-Id"))
}

func TestRequestID_DisponibleParaCorrelacion(t *testing.T) {
	// El identificador debe poder leerse dentro del handler, que es donde los
	// errores internos se registran con él.
	app := fiber.New()
	app.Get("/ping", apphttp.RequestID(), func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "req-456")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "req-456", string(body))
}
