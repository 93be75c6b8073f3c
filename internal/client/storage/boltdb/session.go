package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.etcd.io/bbolt"

	"github.com/vulnlab/accesslab/internal/client/storage"
)

// Сессия лежит двумя записями: токен как есть и JSON-снимок пользователя.
var (
	keyToken = []byte("token")
	keyUser  = []byte("user")
)

// SaveSession stores the current session, replacing any previous one
func (s *Storage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session data: %w", err)
		}

		if err := bucket.Put(keyToken, []byte(session.Token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := bucket.Put(keyUser, data); err != nil {
			return fmt.Errorf("failed to save session data: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session.
// Половинчатое или нечитаемое состояние (нет одной из записей, битый JSON)
// стирается целиком: лучше потребовать новый login, чем работать на обломках.
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	var session *storage.SessionData
	malformed := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		tokenData := bucket.Get(keyToken)
		userData := bucket.Get(keyUser)
		if tokenData == nil && userData == nil {
			return storage.ErrSessionNotFound
		}
		if tokenData == nil || userData == nil {
			malformed = true
			return storage.ErrSessionNotFound
		}

		session = &storage.SessionData{Token: string(tokenData)}
		if err := json.Unmarshal(userData, session); err != nil {
			malformed = true
			session = nil
			return storage.ErrSessionNotFound
		}

		return nil
	})

	if malformed {
		if clearErr := s.clearSession(); clearErr != nil {
			return nil, fmt.Errorf("failed to clear malformed session: %w", clearErr)
		}
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes the stored session (logout)
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(keyToken) == nil && bucket.Get(keyUser) == nil {
			return storage.ErrSessionNotFound
		}

		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete session data: %w", err)
		}

		return nil
	})
}

// clearSession стирает обе записи без проверки их наличия
func (s *Storage) clearSession() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}
		if err := bucket.Delete(keyToken); err != nil {
			return err
		}
		return bucket.Delete(keyUser)
	})
}

// IsAuthenticated checks if a non-expired session exists.
// Exp берется из payload токена без проверки подписи — клиент читает токен
// так же доверчиво, как сервер.
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return false, nil
		}
		return false, err
	}

	exp, ok := tokenExpiry(session.Token)
	if !ok {
		// Нечитаемый exp — пусть решает сервер
		return true, nil
	}

	return time.Now().Before(exp), nil
}

// tokenExpiry достает exp из токена без проверки подписи
func tokenExpiry(tokenString string) (time.Time, bool) {
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := tok.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
