// Package memory реализует record store в памяти процесса.
// Это дефолтный backend: никакой персистентности, коллекция живет до
// рестарта либо до явного Reset.
package memory

import (
	"context"
	"sync"

	"github.com/vulnlab/accesslab/internal/models"
	"github.com/vulnlab/accesslab/internal/server/storage"
)

// Store хранит записи в срезе, сохраняя порядок вставки.
type Store struct {
	mu    sync.RWMutex
	users []*models.User
}

// Compile-time check that Store implements storage.UserStore
var _ storage.UserStore = (*Store)(nil)

// New создает хранилище, заполненное seed-набором.
func New() *Store {
	return &Store{users: storage.Seed()}
}

// Authenticate ищет точное совпадение username и password.
// Линейный скан по четырем записям — индексы тут не нужны.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return cloneUser(u), nil
		}
	}
	return nil, storage.ErrInvalidCredentials
}

// GetByID возвращает копию записи по id.
func (s *Store) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// List возвращает копии всех записей в порядке вставки.
func (s *Store) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// UpdateProfile накладывает patch на профиль записи in-place.
func (s *Store) UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			u.Profile = patch.Apply(u.Profile)
			return cloneUser(u), nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// Delete удаляет запись по id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return storage.ErrUserNotFound
}

// SetRole перезаписывает роль записи.
func (s *Store) SetRole(ctx context.Context, id int64, role string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			u.Role = role
			return cloneUser(u), nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// Count возвращает текущее число записей.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// Reset заменяет коллекцию свежим seed-набором.
// Старые объекты при этом инвалидируются: уже выданные копии и выпущенные
// токены продолжают описывать несуществующее состояние.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = storage.Seed()
	return nil
}

// cloneUser возвращает глубокую копию, чтобы вызывающие не могли менять
// хранилище мимо его методов.
func cloneUser(u *models.User) *models.User {
	c := *u
	if u.Profile != nil {
		p := *u.Profile
		c.Profile = &p
	}
	return &c
}
