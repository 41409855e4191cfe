package importer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/groundnut-admin/internal/store"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// fakeSource devuelve colecciones fijas, con fallos configurables por tipo.
type fakeSource struct {
	users        []UserRecord
	companies    []CompanyRecord
	vehicles     []VehicleRecord
	products     []ProductRecord
	orders       []OrderRecord
	transactions []TransactionRecord
	cities       []CityRecord
	alerts       []AlertRecord
	fail         map[string]error
}

func (f *fakeSource) FetchUsers(context.Context) ([]UserRecord, error) {
	return f.users, f.fail["users"]
}
func (f *fakeSource) FetchCompanies(context.Context) ([]CompanyRecord, error) {
	return f.companies, f.fail["companies"]
}
func (f *fakeSource) FetchVehicles(context.Context) ([]VehicleRecord, error) {
	return f.vehicles, f.fail["vehicles"]
}
func (f *fakeSource) FetchProducts(context.Context) ([]ProductRecord, error) {
	return f.products, f.fail["products"]
}
func (f *fakeSource) FetchOrders(context.Context) ([]OrderRecord, error) {
	return f.orders, f.fail["orders"]
}
func (f *fakeSource) FetchTransactions(context.Context) ([]TransactionRecord, error) {
	return f.transactions, f.fail["transactions"]
}
func (f *fakeSource) FetchCities(context.Context) ([]CityRecord, error) {
	return f.cities, f.fail["cities"]
}
func (f *fakeSource) FetchAlerts(context.Context) ([]AlertRecord, error) {
	return f.alerts, f.fail["alerts"]
}

func newTarget(t *testing.T) *store.Store {
	t.Helper()
	kv, err := localstore.New(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	return store.New(store.Options{KV: kv, Log: logger.Nop()})
}

func TestRun_ImportaYResuelveReferencias(t *testing.T) {
	now := time.Now()
	src := &fakeSource{
		cities:    []CityRecord{{ID: "city-1", Name: "Rajkot", Status: true, CreatedAt: now}},
		companies: []CompanyRecord{{ID: "co-1", Name: "Gujarat Traders", LocationID: ptr("city-1"), Status: true, CreatedAt: now}},
		vehicles:  []VehicleRecord{{ID: "vh-1", Number: "GJ-01-AB-1234", CompanyID: "co-1", Status: true, CreatedAt: now}},
		products: []ProductRecord{{
			ID: "pr-1", CompanyID: "co-1", VehicleID: "vh-1", SlipNumber: "SLIP-100",
			Weight: decimal.NewFromInt(500), FinalPrice: decimal.NewFromInt(90000), CreatedAt: now,
		}},
		alerts: []AlertRecord{{ID: "al-1", Type: "warning", Message: "remote warning", CreatedAt: now}},
	}
	target := newTarget(t)

	summary := New(src, target, logger.Nop()).Run(context.Background())

	assert.Empty(t, summary.Failed)
	assert.Equal(t, 1, summary.Added["companies"])

	companies := target.Companies()
	require.Len(t, companies, 1)
	assert.GreaterOrEqual(t, companies[0].ID, int64(store.ImportedIDBase), "los importados viven en el rango alto")
	require.NotNil(t, companies[0].LocationID)
	assert.Equal(t, "Rajkot", companies[0].LocationName, "la referencia UUID se resolvió al id local de la ciudad")

	products := target.Products()
	require.Len(t, products, 1)
	assert.Equal(t, companies[0].ID, products[0].CompanyID)
	assert.Equal(t, "Gujarat Traders", products[0].CompanyName)
	assert.Equal(t, "GJ-01-AB-1234", products[0].VehicleNumber)

	alerts := target.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.OriginImported, alerts[0].Origin)
}

func TestRun_DedupDejaElConteoIntacto(t *testing.T) {
	target := newTarget(t)
	_, err := target.AddCompany(entity.Company{Name: "Gujarat Traders", Status: true})
	require.NoError(t, err)

	src := &fakeSource{
		companies: []CompanyRecord{{ID: "co-1", Name: "Gujarat Traders", Status: true}},
	}
	summary := New(src, target, logger.Nop()).Run(context.Background())

	assert.Zero(t, summary.Added["companies"], "el nombre ya existente no agrega nada")
	assert.Len(t, target.Companies(), 1)
}

func TestRun_IdLocalEstableDuranteLaSesion(t *testing.T) {
	src := &fakeSource{
		companies: []CompanyRecord{{ID: "co-1", Name: "Gujarat Traders", Status: true}},
	}
	target := newTarget(t)
	imp := New(src, target, logger.Nop())

	imp.Run(context.Background())
	first := imp.ids.localID("co-1")

	// Un segundo import (p. ej. disparado por el listener) reutiliza el mapeo.
	src.companies = append(src.companies, CompanyRecord{ID: "co-2", Name: "Amreli Groundnuts", Status: true})
	imp.Run(context.Background())

	assert.Equal(t, first, imp.ids.localID("co-1"), "mismo UUID, mismo id local")
	assert.NotEqual(t, first, imp.ids.localID("co-2"))
}

func TestRun_FalloDeUnTipoNoBloqueaElResto(t *testing.T) {
	src := &fakeSource{
		cities:    []CityRecord{{ID: "city-1", Name: "Rajkot", Status: true}},
		companies: []CompanyRecord{{ID: "co-1", Name: "Gujarat Traders", Status: true}},
		fail:      map[string]error{"vehicles": errors.New("connection reset")},
	}
	target := newTarget(t)

	summary := New(src, target, logger.Nop()).Run(context.Background())

	assert.Error(t, summary.Failed["vehicles"])
	assert.Equal(t, 1, summary.Added["cities"])
	assert.Equal(t, 1, summary.Added["companies"])
	assert.Empty(t, target.Vehicles())
}

func ptr[T any](v T) *T { return &v }
