package storage

import (
	"context"

	"github.com/vulnlab/accesslab/internal/models"
)

// UserStore defines the record store backing every access operation.
//
// Намеренно отсутствующая деталь: ни один метод не принимает identity
// вызывающего. Проверка "кто имеет право трогать эту запись" должна была бы
// жить уровнем выше — и именно ее там нет.
type UserStore interface {
	// Authenticate ищет запись с точным совпадением username и password.
	// Возвращает ErrInvalidCredentials при любом несовпадении.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// GetByID возвращает запись по id.
	// Возвращает ErrUserNotFound, если записи нет.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// List возвращает все записи в порядке вставки.
	List(ctx context.Context) ([]*models.User, error)

	// UpdateProfile накладывает patch на профиль записи и возвращает результат.
	// Возвращает ErrUserNotFound, если записи нет.
	UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) (*models.User, error)

	// Delete удаляет запись по id.
	// Возвращает ErrUserNotFound, если записи нет.
	Delete(ctx context.Context, id int64) error

	// SetRole перезаписывает роль записи и возвращает обновленную запись.
	// Возвращает ErrUserNotFound, если записи нет.
	SetRole(ctx context.Context, id int64, role string) (*models.User, error)

	// Count возвращает текущее количество записей.
	Count(ctx context.Context) (int, error)

	// Reset заменяет всю коллекцию фиксированным seed-набором.
	Reset(ctx context.Context) error
}
