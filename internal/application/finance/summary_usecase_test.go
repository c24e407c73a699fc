package finance_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appfinance "github.com/tu-usuario/taller-pro/internal/application/finance"
	"github.com/tu-usuario/taller-pro/internal/domain"
	"github.com/tu-usuario/taller-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Caso de uso del resumen financiero de punta a punta contra repositorios en
// memoria: carga paralela, motor puro y mapeo a DTO.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSales struct{ sales []entity.Sale }

func (f *fakeSales) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.Sale, error) {
	return f.sales, nil
}

type fakeOrders struct{ orders []entity.ServiceOrder }

func (f *fakeOrders) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.ServiceOrder, error) {
	return f.orders, nil
}

type fakeStaff struct{ staff []entity.StaffMember }

func (f *fakeStaff) ListActive(ctx context.Context) ([]entity.StaffMember, error) {
	return f.staff, nil
}

type fakeExpenses struct{ expenses []entity.FixedExpense }

func (f *fakeExpenses) ListAll(ctx context.Context) ([]entity.FixedExpense, error) {
	return f.expenses, nil
}

type fakeInventory struct{ items map[string]entity.InventoryItem }

func (f *fakeInventory) Snapshot(ctx context.Context) (map[string]entity.InventoryItem, error) {
	return f.items, nil
}

type fakeRentals struct {
	driver   *entity.Driver
	vehicle  *entity.Vehicle
	payments []entity.RentalPayment
}

func (f *fakeRentals) GetDriver(ctx context.Context, id string) (*entity.Driver, error) {
	if f.driver != nil && f.driver.ID == id {
		return f.driver, nil
	}
	return nil, nil
}

func (f *fakeRentals) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	if f.vehicle != nil && f.vehicle.ID == id {
		return f.vehicle, nil
	}
	return nil, nil
}

func (f *fakeRentals) ListPayments(ctx context.Context, driverID string) ([]entity.RentalPayment, error) {
	return f.payments, nil
}

func buildSummaryUseCase() *appfinance.SummaryUseCase {
	sales := &fakeSales{sales: []entity.Sale{
		{ID: "v1", Date: "2026-06-10", Status: entity.SaleStatusCompletado,
			TotalAmount: decimal.NewFromInt(20000),
			Items: []entity.SaleItem{
				{InventoryItemID: "filtro", Quantity: decimal.NewFromInt(100)},
			}},
		{ID: "v2", Date: "2026-06-11", Status: entity.SaleStatusCancelado,
			TotalAmount: decimal.NewFromInt(5000)},
	}}
	orders := &fakeOrders{orders: []entity.ServiceOrder{
		{ID: "o1", ServiceDate: "2026-06-12", Status: entity.ServiceStatusEntregado,
			ServiceType: "Mecánica General", TotalCost: decimal.NewFromInt(15000),
			TotalSuppliesCost: decimal.NewFromInt(2000)},
	}}
	staff := &fakeStaff{staff: []entity.StaffMember{
		{ID: "p1", Name: "Carlos Pérez", Roles: []string{"Técnico"},
			MonthlySalary: decimal.NewFromInt(5000), CommissionRate: decimal.NewFromFloat(0.05)},
		{ID: "p2", Name: "Ana Gómez", Roles: []string{"Administrador"},
			MonthlySalary: decimal.NewFromInt(5000), CommissionRate: decimal.NewFromFloat(0.03)},
	}}
	expenses := &fakeExpenses{expenses: []entity.FixedExpense{
		{ID: "g1", Name: "Arriendo", Amount: decimal.NewFromInt(10000)},
	}}
	inventory := &fakeInventory{items: map[string]entity.InventoryItem{
		"filtro": {ID: "filtro", Name: "Filtro de aceite", UnitPrice: decimal.NewFromInt(30)},
	}}
	return appfinance.NewSummaryUseCase(sales, orders, staff, expenses, inventory)
}

func TestGetSummary_ResumenCompleto(t *testing.T) {
	uc := buildSummaryUseCase()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	summary, err := uc.GetSummary(context.Background(), from, to)
	require.NoError(t, err)

	// Ingresos: 20000 (venta) + 15000 (orden); la cancelada no cuenta.
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(35000)),
		"ingresos: fue %s", summary.TotalIncome)
	// COGS: 100×30 + 2000 = 5000
	assert.True(t, summary.TotalCostOfGoods.Equal(decimal.NewFromInt(5000)))
	// Utilidad operativa: (20000−3000) + (15000−2000) = 30000
	assert.True(t, summary.TotalProfit.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, 2, summary.OperationCount)

	// Liquidación: 30000 − (10000 salarios + 10000 fijos) = 10000 → compuerta abierta
	assert.True(t, summary.NetProfitBeforeCommissions.Equal(decimal.NewFromInt(10000)))
	require.True(t, summary.ProfitableForCommissions)
	assert.True(t, summary.TotalCommissions.Equal(decimal.NewFromInt(800)),
		"10000 × (0.05 + 0.03)")
	assert.True(t, summary.NetProfit.Equal(decimal.NewFromInt(9200)))
	require.Len(t, summary.Commissions, 2)

	require.Contains(t, summary.ByType, "Venta")
	require.Contains(t, summary.ByType, "Mecánica General")
	assert.Equal(t, 1, summary.ByType["Venta"].Count)
}

// Dos invocaciones con los mismos snapshots deben producir salida idéntica.
func TestGetSummary_Idempotente(t *testing.T) {
	uc := buildSummaryUseCase()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	primera, err := uc.GetSummary(context.Background(), from, to)
	require.NoError(t, err)
	segunda, err := uc.GetSummary(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, primera.TotalIncome.String(), segunda.TotalIncome.String())
	assert.Equal(t, primera.TotalProfit.String(), segunda.TotalProfit.String())
	assert.Equal(t, primera.NetProfit.String(), segunda.NetProfit.String())
	assert.Equal(t, primera.TotalCommissions.String(), segunda.TotalCommissions.String())
}

func TestGetDriverDebt_ConductorInexistente(t *testing.T) {
	uc := appfinance.NewDriverDebtUseCase(&fakeRentals{})

	_, err := uc.GetDriverDebt(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrDriverNotFound)
}

func TestGetDriverDebt_SinVehiculoAsignado(t *testing.T) {
	uc := appfinance.NewDriverDebtUseCase(&fakeRentals{
		driver: &entity.Driver{ID: "c1", Name: "Luis Rojas", ContractDate: "2026-01-01"},
	})

	debt, err := uc.GetDriverDebt(context.Background(), "c1")
	require.NoError(t, err)

	assert.True(t, debt.DebtAmount.IsZero(), "sin tarifa diaria no hay acumulación")
	assert.Zero(t, debt.DaysOwed)
}
