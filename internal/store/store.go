// Package store implementa el Entity Store: la fuente de verdad en memoria de
// todas las colecciones de negocio para el contexto de ejecución actual. Cada
// mutación calcula el nuevo valor de la colección de forma inmutable, lo
// persiste en el almacén local (write-through), encola los efectos derivados
// (registro de actividad, reglas de alertas) y devuelve el snapshot nuevo para
// que el caller responda sin esperar round trips.
//
// La concurrencia dentro del contexto se serializa con un RWMutex (el
// equivalente al event loop único del original). La publicación hacia otros
// contextos ocurre siempre fuera de la sección crítica: un suscriptor puede
// reaccionar llamando ResyncAlerts sin riesgo de deadlock.
package store

import (
	"sync"
	"time"

	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/groundnut-admin/pkg/logger"
)

// AlertNotifier recibe los cambios de la colección de alertas para
// propagarlos a otros contextos. La entrega es fire-and-forget.
type AlertNotifier interface {
	AlertsChanged(count int)
}

// Options dependencias del store.
type Options struct {
	KV       *localstore.Store
	Log      *logger.Logger
	Notifier AlertNotifier    // opcional
	Clock    func() time.Time // opcional; por defecto time.Now
}

// Store fuente de verdad en memoria, una por sesión.
type Store struct {
	mu       sync.RWMutex
	kv       *localstore.Store
	log      *logger.Logger
	notifier AlertNotifier
	clock    func() time.Time

	users        []entity.User
	companies    []entity.Company
	vehicles     []entity.Vehicle
	products     []entity.Product
	orders       []entity.Order
	transactions []entity.Transaction
	cities       []entity.City
	alerts       []entity.SystemAlert
	activities   []entity.Activity

	nextID      int64 // asignador de ids locales de sesión
	nextAlertID int64 // ids de alertas inline, base epoch-millis
}

// New construye el store cargando cada colección del almacén local. Las claves
// ausentes o corruptas degradan a colecciones vacías (el adaptador ya registró
// el detalle).
func New(opts Options) *Store {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	s := &Store{
		kv:       opts.KV,
		log:      opts.Log,
		notifier: opts.Notifier,
		clock:    clock,
	}

	s.users = localstore.Load(s.kv, localstore.KeyUsers, []entity.User(nil))
	s.companies = localstore.Load(s.kv, localstore.KeyCompanies, []entity.Company(nil))
	s.vehicles = localstore.Load(s.kv, localstore.KeyVehicles, []entity.Vehicle(nil))
	s.products = localstore.Load(s.kv, localstore.KeyProducts, []entity.Product(nil))
	s.orders = localstore.Load(s.kv, localstore.KeyOrders, []entity.Order(nil))
	s.transactions = localstore.Load(s.kv, localstore.KeyTransactions, []entity.Transaction(nil))
	s.cities = localstore.Load(s.kv, localstore.KeyCities, []entity.City(nil))
	s.alerts = localstore.Load(s.kv, localstore.KeyAlerts, []entity.SystemAlert(nil))
	s.activities = localstore.Load(s.kv, localstore.KeyActivities, []entity.Activity(nil))

	s.nextID = s.maxLocalID() + 1
	s.nextAlertID = clock().UnixMilli()

	return s
}

// maxLocalID busca el mayor id local de sesión (los importados viven en un
// rango alto propio y no participan del asignador).
func (s *Store) maxLocalID() int64 {
	var max int64
	bump := func(id int64) {
		if id < ImportedIDBase && id > max {
			max = id
		}
	}
	for _, u := range s.users {
		bump(u.ID)
	}
	for _, c := range s.companies {
		bump(c.ID)
	}
	for _, v := range s.vehicles {
		bump(v.ID)
	}
	for _, p := range s.products {
		bump(p.ID)
	}
	for _, o := range s.orders {
		bump(o.ID)
	}
	for _, t := range s.transactions {
		bump(t.ID)
	}
	for _, c := range s.cities {
		bump(c.ID)
	}
	return max
}

// ImportedIDBase base de ids locales asignados a registros importados del
// datastore remoto; mantiene disjuntos ambos espacios durante la sesión.
const ImportedIDBase = 1_000_000

func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) allocAlertID() int64 {
	id := s.nextAlertID
	s.nextAlertID++
	return id
}

// persist escribe una colección; el fallo se registra y la mutación continúa
// con el estado en memoria (contrato de degradación del adaptador).
func (s *Store) persist(key string, value any) {
	var err error
	switch v := value.(type) {
	case []entity.User:
		err = localstore.Save(s.kv, key, v)
	case []entity.Company:
		err = localstore.Save(s.kv, key, v)
	case []entity.Vehicle:
		err = localstore.Save(s.kv, key, v)
	case []entity.Product:
		err = localstore.Save(s.kv, key, v)
	case []entity.Order:
		err = localstore.Save(s.kv, key, v)
	case []entity.Transaction:
		err = localstore.Save(s.kv, key, v)
	case []entity.City:
		err = localstore.Save(s.kv, key, v)
	case []entity.SystemAlert:
		err = localstore.Save(s.kv, key, v)
	case []entity.Activity:
		err = localstore.Save(s.kv, key, v)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("persistencia local falló; se continúa en memoria")
	}
}

// notifyAlerts publica el cambio de alertas fuera de la sección crítica.
func (s *Store) notifyAlerts(count int, changed bool) {
	if changed && s.notifier != nil {
		s.notifier.AlertsChanged(count)
	}
}
