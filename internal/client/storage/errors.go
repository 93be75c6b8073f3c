package storage

import "errors"

// ErrSessionNotFound возвращается, когда сохраненной сессии нет
var ErrSessionNotFound = errors.New("session not found")
