package store

import "github.com/tu-usuario/groundnut-admin/internal/domain/entity"

// Accessors de lectura: devuelven copias para que el caller pueda iterar sin
// sostener el lock ni observar mutaciones concurrentes.

func (s *Store) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.User(nil), s.users...)
}

func (s *Store) Companies() []entity.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Company(nil), s.companies...)
}

func (s *Store) Vehicles() []entity.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Vehicle(nil), s.vehicles...)
}

func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...)
}

func (s *Store) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Order(nil), s.orders...)
}

func (s *Store) Transactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Transaction(nil), s.transactions...)
}

func (s *Store) Cities() []entity.City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.City(nil), s.cities...)
}

func (s *Store) Alerts() []entity.SystemAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.SystemAlert(nil), s.alerts...)
}

func (s *Store) Activities() []entity.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Activity(nil), s.activities...)
}

// AlertCount conteo en memoria; lo compara el poll de reconciliación contra el
// almacén durable.
func (s *Store) AlertCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}
