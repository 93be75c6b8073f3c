// Package storage описывает локальное хранилище клиентской сессии.
package storage

import (
	"context"
	"time"

	"github.com/vulnlab/accesslab/pkg/api"
)

// SessionData — сохраненная сессия: токен как есть плюс снимок пользователя
// из ответа логина. Токен лежит открытым текстом: клиент стенда ничего не
// шифрует, как и сервер. Токен хранится отдельной записью и в JSON снимка
// не попадает.
type SessionData struct {
	Token   string    `json:"-"`
	User    api.User  `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}

// SessionStorage определяет интерфейс хранилища сессии
type SessionStorage interface {
	// SaveSession сохраняет сессию, затирая предыдущую
	SaveSession(ctx context.Context, session *SessionData) error
	// GetSession возвращает сохраненную сессию или ErrSessionNotFound
	GetSession(ctx context.Context) (*SessionData, error)
	// DeleteSession удаляет сохраненную сессию (logout)
	DeleteSession(ctx context.Context) error
	// IsAuthenticated сообщает, есть ли непросроченная сессия
	IsAuthenticated(ctx context.Context) (bool, error)
	// Close закрывает хранилище
	Close() error
}
