package reports

import (
	"encoding/csv"
	"strings"
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

func seededService(t *testing.T) *Service {
	t.Helper()
	kv, err := localstore.New(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	s := store.New(store.Options{KV: kv, Log: logger.Nop()})

	cities, err := s.AddCity(entity.City{Name: "Rajkot", Status: true})
	require.NoError(t, err)
	cityID := cities[0].ID
	companies, err := s.AddCompany(entity.Company{Name: "Gujarat Traders", LocationID: &cityID, Status: true})
	require.NoError(t, err)
	vehicles, err := s.AddVehicle(entity.Vehicle{Number: "GJ-01-AB-1234", CompanyID: companies[0].ID, Status: true})
	require.NoError(t, err)
	_, err = s.AddProduct(entity.Product{
		SlipNumber: "SLIP-001",
		CompanyID:  companies[0].ID,
		VehicleID:  vehicles[0].ID,
		Weight:     decimal.NewFromInt(500),
		FinalPrice: decimal.NewFromInt(90000),
	})
	require.NoError(t, err)

	return NewService(s, time.Now)
}

func TestSummary_AgregaSobreElSnapshot(t *testing.T) {
	svc := seededService(t)

	summary := svc.Summary()

	assert.Equal(t, 1, summary.TotalCompanies)
	assert.Equal(t, 1, summary.TotalVehicles)
	assert.Equal(t, 1, summary.TotalProducts)
	assert.True(t, summary.MonthlyRevenue.Equal(decimal.NewFromInt(90000)),
		"la venta sintética del lote cuenta como ingreso del mes")
	assert.Equal(t, 100, summary.Growth.Products, "primer mes con altas: 100%")
	assert.NotEmpty(t, summary.RecentActivities)
	assert.NotEmpty(t, summary.RecentActivities[0].TimeAgo)
}

func TestRegional_IncluyeLaCiudadConSusAgregados(t *testing.T) {
	svc := seededService(t)

	regional := svc.Regional()

	require.Len(t, regional, 1)
	assert.Equal(t, "Rajkot", regional[0].Region)
	assert.True(t, regional[0].Revenue.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, 1, regional[0].Companies)
}

func TestCSV_EsParseableYContieneAmbasSecciones(t *testing.T) {
	svc := seededService(t)

	out, err := svc.CSV()
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(out)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"metric", "value"}, records[0])
	var regionalHeader bool
	for _, rec := range records {
		if len(rec) == 5 && rec[0] == "region" {
			regionalHeader = true
		}
	}
	assert.True(t, regionalHeader, "el CSV incluye la sección regional")
	assert.Contains(t, string(out), "monthly_revenue,90000")
	assert.Contains(t, string(out), "Rajkot")
}
