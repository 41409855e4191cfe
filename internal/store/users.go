package store

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/groundnut-admin/internal/domain"
	"github.com/tu-usuario/groundnut-admin/internal/domain/entity"
	"github.com/tu-usuario/groundnut-admin/internal/infrastructure/localstore"
)

// UserPatch campos opcionales para actualizar un usuario.
type UserPatch struct {
	UserName     *string
	Email        *string
	PasswordHash *string
	Role         *entity.Role
	CountryCode  *string
	Mobile       *string
	Status       *bool
}

// AddUser agrega un usuario. El email es la clave de unicidad.
func (s *Store) AddUser(u entity.User) ([]entity.User, error) {
	if strings.TrimSpace(u.Email) == "" || strings.TrimSpace(u.UserName) == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			s.mu.Unlock()
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if u.ID == 0 {
		u.ID = s.allocID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.clock()
	}
	if u.Role == "" {
		u.Role = entity.RoleUser
	}
	s.users = append(append([]entity.User(nil), s.users...), u)
	s.persist(localstore.KeyUsers, s.users)
	s.logActivity(entity.ActivityUser, fmt.Sprintf("New user %s registered", u.UserName), entity.ActivitySuccess)

	snapshot := append([]entity.User(nil), s.users...)
	s.mu.Unlock()
	return snapshot, nil
}

// UpdateUser aplica un patch parcial. Id ausente es un no-op silencioso.
func (s *Store) UpdateUser(id int64, patch UserPatch) []entity.User {
	s.mu.Lock()
	next := append([]entity.User(nil), s.users...)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		u := &next[i]
		if patch.UserName != nil {
			u.UserName = *patch.UserName
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.CountryCode != nil {
			u.CountryCode = *patch.CountryCode
		}
		if patch.Mobile != nil {
			u.Mobile = *patch.Mobile
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		s.users = next
		s.persist(localstore.KeyUsers, s.users)
		s.logActivity(entity.ActivityUser, fmt.Sprintf("User %s profile updated", u.UserName), entity.ActivityInfo)
		break
	}
	snapshot := append([]entity.User(nil), s.users...)
	s.mu.Unlock()
	return snapshot
}

// DeleteUser elimina por id. Sin efectos en cascada.
func (s *Store) DeleteUser(id int64) []entity.User {
	s.mu.Lock()
	next := make([]entity.User, 0, len(s.users))
	var deleted *entity.User
	for _, u := range s.users {
		if u.ID == id {
			removed := u
			deleted = &removed
			continue
		}
		next = append(next, u)
	}
	if deleted != nil {
		s.users = next
		s.persist(localstore.KeyUsers, s.users)
		s.logActivity(entity.ActivityUser, fmt.Sprintf("User %s has been deleted", deleted.UserName), entity.ActivityWarning)
	}
	snapshot := append([]entity.User(nil), s.users...)
	s.mu.Unlock()
	return snapshot
}
