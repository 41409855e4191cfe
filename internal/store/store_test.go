package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

type recordingNotifier struct {
	calls  int
	counts []int
}

func (n *recordingNotifier) AlertsChanged(count int) {
	n.calls++
	n.counts = append(n.counts, count)
}

func newTestStore(t *testing.T) (*Store, *recordingNotifier) {
	t.Helper()
	kv, err := localstore.New(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	notifier := &recordingNotifier{}
	s := New(Options{
		KV:       kv,
		Log:      logger.Nop(),
		Notifier: notifier,
		Clock:    time.Now,
	})
	return s, notifier
}

// seedCompany crea una empresa activa válida para referenciar.
func seedCompany(t *testing.T, s *Store) entity.Company {
	t.Helper()
	companies, err := s.AddCompany(entity.Company{Name: "Gujarat Traders", Status: true})
	require.NoError(t, err)
	return companies[len(companies)-1]
}

func seedVehicle(t *testing.T, s *Store, companyID int64, active bool) entity.Vehicle {
	t.Helper()
	vehicles, err := s.AddVehicle(entity.Vehicle{Number: "GJ-01-AB-1234", CompanyID: companyID, Status: active})
	require.NoError(t, err)
	return vehicles[len(vehicles)-1]
}

func TestAddUser_AgregaYAsignaId(t *testing.T) {
	s, _ := newTestStore(t)

	users, err := s.AddUser(entity.User{UserName: "ramesh", Email: "ramesh@example.com"})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotZero(t, users[0].ID, "el store debe asignar un id local")
	assert.Equal(t, entity.RoleUser, users[0].Role, "rol por defecto USER")
	assert.Len(t, s.Users(), 1)
}

func TestAddUser_EmailDuplicadoFalla(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.AddUser(entity.User{UserName: "ramesh", Email: "ramesh@example.com"})
	require.NoError(t, err)

	_, err = s.AddUser(entity.User{UserName: "otro", Email: "RAMESH@example.com"})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "el dedup de email no distingue mayúsculas")
	assert.Len(t, s.Users(), 1)
}

func TestUpdateUser_IdAusenteEsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.AddUser(entity.User{UserName: "ramesh", Email: "ramesh@example.com"})
	require.NoError(t, err)
	before := s.Users()

	name := "fantasma"
	after := s.UpdateUser(99999, UserPatch{UserName: &name})

	assert.Equal(t, before, after, "un id inexistente no debe mutar nada")
}

func TestAddCompany_CiudadInexistenteFalla(t *testing.T) {
	s, _ := newTestStore(t)
	loc := int64(42)

	_, err := s.AddCompany(entity.Company{Name: "Saurashtra Agro", LocationID: &loc})

	assert.ErrorIs(t, err, domain.ErrMissingReference)
	assert.Empty(t, s.Companies())
}

func TestAddVehicle_InactivoGeneraAlertaDeAprobacion(t *testing.T) {
	s, notifier := newTestStore(t)
	company := seedCompany(t, s)

	seedVehicle(t, s, company.ID, false)

	var found bool
	for _, a := range s.Alerts() {
		if a.Message == "Vehicle GJ-01-AB-1234 status is inactive - requires approval for activation" {
			found = true
			assert.Equal(t, entity.OriginUser, a.Origin, "la alerta inline sobrevive a la regeneración")
		}
	}
	assert.True(t, found, "un vehículo creado inactivo dispara la alerta de aprobación")
	assert.Positive(t, notifier.calls, "la mutación debe publicar el cambio de alertas")
}

func TestUpdateVehicle_TransicionesEmitenAlertas(t *testing.T) {
	s, _ := newTestStore(t)
	company := seedCompany(t, s)
	v := seedVehicle(t, s, company.ID, true)

	inactive := false
	s.UpdateVehicle(v.ID, VehiclePatch{Status: &inactive})

	messages := make(map[string]entity.AlertOrigin)
	for _, a := range s.Alerts() {
		messages[a.Message] = a.Origin
	}
	origin, ok := messages["Vehicle GJ-01-AB-1234 status changed to inactive - requires attention"]
	require.True(t, ok, "active -> inactive debe emitir warning")
	assert.Equal(t, entity.OriginUser, origin)

	active := true
	s.UpdateVehicle(v.ID, VehiclePatch{Status: &active})

	var reactivated bool
	for _, a := range s.Alerts() {
		if a.Message == "Vehicle GJ-01-AB-1234 has been activated and approved" && a.Origin == entity.OriginUser {
			reactivated = true
		}
	}
	assert.True(t, reactivated, "inactive -> active debe emitir info")
}

func TestUpdateVehicle_SinCambioDeStatusNoEmiteAlertaInline(t *testing.T) {
	s, _ := newTestStore(t)
	company := seedCompany(t, s)
	v := seedVehicle(t, s, company.ID, true)
	baseline := 0
	for _, a := range s.Alerts() {
		if a.Origin == entity.OriginUser {
			baseline++
		}
	}

	number := "GJ-01-AB-9999"
	s.UpdateVehicle(v.ID, VehiclePatch{Number: &number})

	inline := 0
	for _, a := range s.Alerts() {
		if a.Origin == entity.OriginUser {
			inline++
		}
	}
	assert.Equal(t, baseline, inline, "cambiar la placa no es una transición de status")
}

func TestAddProduct_EfectosDerivadosCompletos(t *testing.T) {
	s, _ := newTestStore(t)
	companies, err := s.AddCompany(entity.Company{Name: "Junagadh Seeds", Status: false})
	require.NoError(t, err)
	company := companies[0]
	v := seedVehicle(t, s, company.ID, true)

	products, err := s.AddProduct(entity.Product{
		SlipNumber: "SLIP-001",
		CompanyID:  company.ID,
		VehicleID:  v.ID,
		Weight:     decimal.NewFromInt(50),
		FinalPrice: decimal.NewFromInt(125000),
	})
	require.NoError(t, err)
	require.Len(t, products, 1)

	// La empresa inactiva se activa al recibir producto.
	for _, c := range s.Companies() {
		if c.ID == company.ID {
			assert.True(t, c.Status, "recibir producto activa la empresa de origen")
		}
	}

	// Se registra la transacción sintética de venta por el precio final.
	var sale *entity.Transaction
	for _, tx := range s.Transactions() {
		if tx.Type == entity.TxSale {
			found := tx
			sale = &found
		}
	}
	require.NotNil(t, sale, "todo producto genera su transacción de venta")
	assert.True(t, sale.Amount.Equal(decimal.NewFromInt(125000)))
	assert.Equal(t, "Sale transaction for SLIP-001 from Junagadh Seeds - 50kg", sale.Description)

	// 50kg < 100kg: alerta inline de inventario bajo más la warning regenerada.
	inline, auto := 0, 0
	for _, a := range s.Alerts() {
		if a.Message == "Low inventory alert for Product SLIP-001 - 50kg total weight" {
			switch a.Origin {
			case entity.OriginUser:
				inline++
			case entity.OriginAuto:
				auto++
			}
		}
	}
	assert.Equal(t, 1, inline, "la regla inline se dispara una vez al crear")
	assert.Equal(t, 1, auto, "la regeneración produce su propia warning determinista")
}

func TestAddProduct_ReferenciasInexistentesFallan(t *testing.T) {
	s, _ := newTestStore(t)
	company := seedCompany(t, s)

	_, err := s.AddProduct(entity.Product{SlipNumber: "SLIP-XX", CompanyID: 777, VehicleID: 1})
	assert.ErrorIs(t, err, domain.ErrMissingReference, "empresa inexistente")

	_, err = s.AddProduct(entity.Product{SlipNumber: "SLIP-XX", CompanyID: company.ID, VehicleID: 777})
	assert.ErrorIs(t, err, domain.ErrMissingReference, "vehículo inexistente")
	assert.Empty(t, s.Products())
}

func TestAddOrder_ProductoInexistenteFalla(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddOrder(entity.Order{ProductID: 123, Amount: decimal.NewFromInt(500)})

	assert.ErrorIs(t, err, domain.ErrMissingReference)
}

func TestResolveAlert_EsMonotona(t *testing.T) {
	s, notifier := newTestStore(t)
	alerts := s.AddAlert(entity.SystemAlert{Type: entity.AlertWarning, Message: "revisar báscula"})
	id := alerts[len(alerts)-1].ID

	s.ResolveAlert(id)
	callsAfterResolve := notifier.calls
	s.ResolveAlert(id)

	for _, a := range s.Alerts() {
		if a.ID == id {
			assert.True(t, a.Resolved)
		}
	}
	assert.Equal(t, callsAfterResolve, notifier.calls, "resolver una alerta ya resuelta no publica")
}

func TestLogActivity_RespetaElTope(t *testing.T) {
	s, _ := newTestStore(t)
	company := seedCompany(t, s)

	for i := 0; i < 30; i++ {
		city := entity.City{Name: "Ciudad " + string(rune('A'+i)), Status: true}
		_, err := s.AddCity(city)
		require.NoError(t, err)
	}

	activities := s.Activities()
	assert.Len(t, activities, 20, "tope de 20 entradas")
	assert.Contains(t, activities[0].Message, "added as city", "la más reciente va primero")
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].CreatedAt.After(activities[i-1].CreatedAt), "orden descendente por fecha")
	}
	_ = company
}

func TestDeleteCity_LimpiaReferenciasEnEmpresas(t *testing.T) {
	s, _ := newTestStore(t)
	cities, err := s.AddCity(entity.City{Name: "Rajkot", Status: true})
	require.NoError(t, err)
	cityID := cities[0].ID
	companies, err := s.AddCompany(entity.Company{Name: "Rajkot Agro", LocationID: &cityID, Status: true})
	require.NoError(t, err)
	require.Equal(t, "Rajkot", companies[0].LocationName)

	s.DeleteCity(cityID)

	after := s.Companies()
	require.Len(t, after, 1)
	assert.Nil(t, after[0].LocationID, "la referencia se anula, la empresa sobrevive")
	assert.Empty(t, after[0].LocationName)
}

func TestUpdateCity_PropagaElNombre(t *testing.T) {
	s, _ := newTestStore(t)
	cities, err := s.AddCity(entity.City{Name: "Gondal", Status: true})
	require.NoError(t, err)
	cityID := cities[0].ID
	_, err = s.AddCompany(entity.Company{Name: "Gondal Traders", LocationID: &cityID, Status: true})
	require.NoError(t, err)

	renamed := "Gondal City"
	s.UpdateCity(cityID, CityPatch{Name: &renamed})

	companies := s.Companies()
	require.Len(t, companies, 1)
	assert.Equal(t, "Gondal City", companies[0].LocationName)
}

func TestMergeCompanies_DedupPorNombre(t *testing.T) {
	s, _ := newTestStore(t)
	seedCompany(t, s)

	added := s.MergeCompanies([]entity.Company{
		{ID: 1_000_001, RemoteID: "a0b1", Name: "Gujarat Traders", Status: true},
		{ID: 1_000_002, RemoteID: "c2d3", Name: "Amreli Groundnuts", Status: true},
	})

	assert.Equal(t, 1, added, "el nombre duplicado se descarta, lo local gana")
	assert.Len(t, s.Companies(), 2)
}

func TestMergeAlerts_MarcaOrigenImportadoYSobrevive(t *testing.T) {
	s, notifier := newTestStore(t)
	company := seedCompany(t, s)

	added := s.MergeAlerts([]entity.SystemAlert{
		{ID: 1_000_010, Type: entity.AlertInfo, Message: "imported remote alert", CreatedAt: time.Now()},
	})
	require.Equal(t, 1, added)
	assert.Positive(t, notifier.calls, "el merge de alertas publica el conteo nuevo")

	// Una mutación que regenera las alertas auto no debe tocar la importada.
	seedVehicle(t, s, company.ID, true)

	var survived bool
	for _, a := range s.Alerts() {
		if a.ID == 1_000_010 {
			survived = true
			assert.Equal(t, entity.OriginImported, a.Origin)
		}
	}
	assert.True(t, survived, "las alertas importadas sobreviven a la regeneración")
}

func TestNew_RecargaEstadoPersistido(t *testing.T) {
	dir := t.TempDir()
	kv, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)
	first := New(Options{KV: kv, Log: logger.Nop()})
	_, err = first.AddCompany(entity.Company{Name: "Persistente SA", Status: true})
	require.NoError(t, err)

	kv2, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)
	second := New(Options{KV: kv2, Log: logger.Nop()})

	require.Len(t, second.Companies(), 1, "otro contexto sobre el mismo directorio ve el estado")
	assert.Equal(t, "Persistente SA", second.Companies()[0].Name)
	assert.Equal(t, len(first.Activities()), len(second.Activities()))
}

func TestResyncAlerts_ConvergeConElAlmacen(t *testing.T) {
	dir := t.TempDir()
	kvA, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)
	kvB, err := localstore.New(dir, logger.Nop())
	require.NoError(t, err)
	a := New(Options{KV: kvA, Log: logger.Nop()})
	b := New(Options{KV: kvB, Log: logger.Nop()})

	a.AddAlert(entity.SystemAlert{Type: entity.AlertError, Message: "falla de báscula"})
	require.Zero(t, b.AlertCount(), "sin señal, el otro contexto aún no ve nada")

	b.ResyncAlerts()

	assert.Equal(t, a.AlertCount(), b.AlertCount(), "idempotente y convergente tras la señal")
}
