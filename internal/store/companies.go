package store

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// CompanyPatch campos opcionales para actualizar una empresa.
type CompanyPatch struct {
	Name         *string
	LocationID   *int64
	LocationName *string
	Status       *bool
}

// AddCompany agrega una empresa. Si referencia una ciudad, ésta debe existir.
func (s *Store) AddCompany(c entity.Company) ([]entity.Company, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	if c.LocationID != nil {
		city, ok := s.cityByID(*c.LocationID)
		if !ok {
			s.mu.Unlock()
			return nil, domain.ErrMissingReference
		}
		c.LocationName = city.Name
	}
	if c.ID == 0 {
		c.ID = s.allocID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.clock()
	}
	s.companies = append(append([]entity.Company(nil), s.companies...), c)
	s.persist(localstore.KeyCompanies, s.companies)
	s.logActivity(entity.ActivityCompany, fmt.Sprintf("%s registered as new trading partner", c.Name), entity.ActivitySuccess)

	snapshot := append([]entity.Company(nil), s.companies...)
	s.mu.Unlock()
	return snapshot, nil
}

// UpdateCompany aplica un patch parcial. Id ausente es un no-op silencioso.
func (s *Store) UpdateCompany(id int64, patch CompanyPatch) []entity.Company {
	s.mu.Lock()
	s.updateCompanyLocked(id, patch, true)
	snapshot := append([]entity.Company(nil), s.companies...)
	s.mu.Unlock()
	return snapshot
}

// updateCompanyLocked versión interna reutilizada por los efectos derivados
// (activación automática al crear producto, limpieza referencial de ciudades).
func (s *Store) updateCompanyLocked(id int64, patch CompanyPatch, logEntry bool) {
	next := append([]entity.Company(nil), s.companies...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		c := &next[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.LocationID != nil {
			c.LocationID = patch.LocationID
		}
		if patch.LocationName != nil {
			c.LocationName = *patch.LocationName
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		s.companies = next
		s.persist(localstore.KeyCompanies, s.companies)
		if logEntry {
			s.logActivity(entity.ActivityCompany, fmt.Sprintf("%s company details updated", c.Name), entity.ActivityInfo)
		}
		return
	}
}

// DeleteCompany elimina por id. No cascada sobre vehículos ni productos.
func (s *Store) DeleteCompany(id int64) []entity.Company {
	s.mu.Lock()
	next := make([]entity.Company, 0, len(s.companies))
	var deleted *entity.Company
	for _, c := range s.companies {
		if c.ID == id {
			removed := c
			deleted = &removed
			continue
		}
		next = append(next, c)
	}
	if deleted != nil {
		s.companies = next
		s.persist(localstore.KeyCompanies, s.companies)
		s.logActivity(entity.ActivityCompany, fmt.Sprintf("%s company has been removed", deleted.Name), entity.ActivityWarning)
	}
	snapshot := append([]entity.Company(nil), s.companies...)
	s.mu.Unlock()
	return snapshot
}

func (s *Store) companyByID(id int64) (entity.Company, bool) {
	for _, c := range s.companies {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Company{}, false
}
