package store

import (
	"strings"

	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// Las operaciones Merge* aplican lotes importados del backend remoto. Son
// append-only: un registro entrante cuya clave de negocio ya existe localmente
// se descarta (lo local gana), el resto se agrega. Cada colección se aplica de
// forma independiente según va llegando su fetch.

// MergeUsers empalma usuarios importados; clave de dedup: email (sin distinguir
// mayúsculas).
func (s *Store) MergeUsers(incoming []entity.User) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.users))
	for _, u := range s.users {
		seen[strings.ToLower(u.Email)] = struct{}{}
	}
	added := 0
	next := append([]entity.User(nil), s.users...)
	for _, u := range incoming {
		key := strings.ToLower(u.Email)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		next = append(next, u)
		added++
	}
	if added > 0 {
		s.users = next
		s.persist(localstore.KeyUsers, s.users)
	}
	return added
}

// MergeCompanies clave de dedup: nombre.
func (s *Store) MergeCompanies(incoming []entity.Company) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.companies))
	for _, c := range s.companies {
		seen[c.Name] = struct{}{}
	}
	added := 0
	next := append([]entity.Company(nil), s.companies...)
	for _, c := range incoming {
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		next = append(next, c)
		added++
	}
	if added > 0 {
		s.companies = next
		s.persist(localstore.KeyCompanies, s.companies)
	}
	return added
}

// MergeVehicles clave de dedup: número de placa.
func (s *Store) MergeVehicles(incoming []entity.Vehicle) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.vehicles))
	for _, v := range s.vehicles {
		seen[v.Number] = struct{}{}
	}
	added := 0
	next := append([]entity.Vehicle(nil), s.vehicles...)
	for _, v := range incoming {
		if _, dup := seen[v.Number]; dup {
			continue
		}
		seen[v.Number] = struct{}{}
		next = append(next, v)
		added++
	}
	if added > 0 {
		s.vehicles = next
		s.persist(localstore.KeyVehicles, s.vehicles)
	}
	return added
}

// MergeProducts clave de dedup: número de remisión.
func (s *Store) MergeProducts(incoming []entity.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.products))
	for _, p := range s.products {
		seen[p.SlipNumber] = struct{}{}
	}
	added := 0
	next := append([]entity.Product(nil), s.products...)
	for _, p := range incoming {
		if _, dup := seen[p.SlipNumber]; dup {
			continue
		}
		seen[p.SlipNumber] = struct{}{}
		next = append(next, p)
		added++
	}
	if added > 0 {
		s.products = next
		s.persist(localstore.KeyProducts, s.products)
	}
	return added
}

// MergeCities clave de dedup: nombre.
func (s *Store) MergeCities(incoming []entity.City) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.cities))
	for _, c := range s.cities {
		seen[c.Name] = struct{}{}
	}
	added := 0
	next := append([]entity.City(nil), s.cities...)
	for _, c := range incoming {
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		next = append(next, c)
		added++
	}
	if added > 0 {
		s.cities = next
		s.persist(localstore.KeyCities, s.cities)
	}
	return added
}

// MergeOrders sin clave de negocio propia: dedup por id ya mapeado.
func (s *Store) MergeOrders(incoming []entity.Order) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(s.orders))
	for _, o := range s.orders {
		seen[o.ID] = struct{}{}
	}
	added := 0
	next := append([]entity.Order(nil), s.orders...)
	for _, o := range incoming {
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		next = append(next, o)
		added++
	}
	if added > 0 {
		s.orders = next
		s.persist(localstore.KeyOrders, s.orders)
	}
	return added
}

// MergeTransactions dedup por id ya mapeado.
func (s *Store) MergeTransactions(incoming []entity.Transaction) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(s.transactions))
	for _, tx := range s.transactions {
		seen[tx.ID] = struct{}{}
	}
	added := 0
	next := append([]entity.Transaction(nil), s.transactions...)
	for _, tx := range incoming {
		if _, dup := seen[tx.ID]; dup {
			continue
		}
		seen[tx.ID] = struct{}{}
		next = append(next, tx)
		added++
	}
	if added > 0 {
		s.transactions = next
		s.persist(localstore.KeyTransactions, s.transactions)
	}
	return added
}

// MergeAlerts marca las entrantes con origen imported (sobreviven a la
// regeneración reactiva) y publica el nuevo conteo.
func (s *Store) MergeAlerts(incoming []entity.SystemAlert) int {
	s.mu.Lock()
	seen := make(map[int64]struct{}, len(s.alerts))
	for _, a := range s.alerts {
		seen[a.ID] = struct{}{}
	}
	added := 0
	next := append([]entity.SystemAlert(nil), s.alerts...)
	for _, a := range incoming {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		a.Origin = entity.OriginImported
		next = append(next, a)
		added++
	}
	if added > 0 {
		s.alerts = next
		s.persist(localstore.KeyAlerts, s.alerts)
	}
	count := len(s.alerts)
	s.mu.Unlock()

	s.notifyAlerts(count, added > 0)
	return added
}

// MergeActivities empalma el registro remoto respetando ventana y tope local.
func (s *Store) MergeActivities(incoming []entity.Activity) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.activities))
	for _, a := range s.activities {
		seen[a.ID] = struct{}{}
	}
	added := 0
	next := append([]entity.Activity(nil), s.activities...)
	for _, a := range incoming {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		next = append(next, a)
		added++
	}
	if added > 0 {
		s.activities = next
		s.sortAndTrimActivities()
		s.persist(localstore.KeyActivities, s.activities)
	}
	return added
}
