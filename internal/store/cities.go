package store

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// CityPatch campos opcionales para actualizar una ciudad.
type CityPatch struct {
	Name   *string
	Status *bool
}

// AddCity agrega una ciudad/región de operación.
func (s *Store) AddCity(c entity.City) ([]entity.City, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	if c.ID == 0 {
		c.ID = s.allocID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.clock()
	}
	s.cities = append(append([]entity.City(nil), s.cities...), c)
	s.persist(localstore.KeyCities, s.cities)
	s.logActivity(entity.ActivityCompany, fmt.Sprintf("%s added as city", c.Name), entity.ActivitySuccess)

	snapshot := append([]entity.City(nil), s.cities...)
	s.mu.Unlock()
	return snapshot, nil
}

// UpdateCity aplica un patch parcial. Un cambio de nombre se propaga al
// LocationName desnormalizado de las empresas que la referencian.
func (s *Store) UpdateCity(id int64, patch CityPatch) []entity.City {
	s.mu.Lock()
	next := append([]entity.City(nil), s.cities...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		c := &next[i]
		renamed := patch.Name != nil && *patch.Name != c.Name
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		s.cities = next
		s.persist(localstore.KeyCities, s.cities)

		if renamed {
			companies := append([]entity.Company(nil), s.companies...)
			touched := false
			for j := range companies {
				if companies[j].LocationID != nil && *companies[j].LocationID == id {
					companies[j].LocationName = c.Name
					touched = true
				}
			}
			if touched {
				s.companies = companies
				s.persist(localstore.KeyCompanies, s.companies)
			}
		}
		s.logActivity(entity.ActivityCompany, fmt.Sprintf("City %s updated", c.Name), entity.ActivityInfo)
		break
	}
	snapshot := append([]entity.City(nil), s.cities...)
	s.mu.Unlock()
	return snapshot
}

// DeleteCity elimina por id y limpia la referencia en las empresas asociadas
// (LocationID y LocationName quedan vacíos; la empresa sobrevive).
func (s *Store) DeleteCity(id int64) []entity.City {
	s.mu.Lock()
	next := make([]entity.City, 0, len(s.cities))
	var deleted *entity.City
	for _, c := range s.cities {
		if c.ID == id {
			removed := c
			deleted = &removed
			continue
		}
		next = append(next, c)
	}
	if deleted != nil {
		s.cities = next
		s.persist(localstore.KeyCities, s.cities)

		companies := append([]entity.Company(nil), s.companies...)
		touched := false
		for j := range companies {
			if companies[j].LocationID != nil && *companies[j].LocationID == id {
				companies[j].LocationID = nil
				companies[j].LocationName = ""
				touched = true
			}
		}
		if touched {
			s.companies = companies
			s.persist(localstore.KeyCompanies, s.companies)
		}
		s.logActivity(entity.ActivityCompany, fmt.Sprintf("City %s has been removed", deleted.Name), entity.ActivityWarning)
	}
	snapshot := append([]entity.City(nil), s.cities...)
	s.mu.Unlock()
	return snapshot
}

func (s *Store) cityByID(id int64) (entity.City, bool) {
	for _, c := range s.cities {
		if c.ID == id {
			return c, true
		}
	}
	return entity.City{}, false
}
