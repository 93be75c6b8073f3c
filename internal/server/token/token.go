// Package token реализует намеренно уязвимый кодек сессионных токенов.
//
// Артефакт внешне выглядит как JWT (header.payload.signature, base64url),
// но сегмент подписи — это просто закодированная строка-метка с вшитым
// секретом. При разборе подпись не пересчитывается и не сверяется: любой,
// кто может собрать три сегмента, получает токен, который Parse примет.
// Отсутствие проверки подписи — предмет обучения, не дефект реализации.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TokenTTL — фиксированное окно жизни токена.
const TokenTTL = 24 * time.Hour

// signaturePrefix — метка, из которой собирается "подпись".
const signaturePrefix = "signature_with_"

var (
	// ErrTokenMalformed — структура токена не соответствует ожидаемой
	// (не три сегмента либо payload не декодируется).
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenExpired — токен структурно корректен, но срок действия истек.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims — identity-утверждения, зашитые в payload токена.
type Claims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IssuedAt int64  `json:"iat"`
	ExpireAt int64  `json:"exp"`
}

// Codec выпускает и разбирает сессионные токены.
type Codec struct {
	secret string
	now    func() time.Time
}

// NewCodec создает кодек с заданным секретом.
func NewCodec(secret string) *Codec {
	return &Codec{
		secret: secret,
		now:    time.Now,
	}
}

// Issue выпускает токен для identity-утверждений.
// Поля iat/exp проставляются здесь: exp = now + 24h.
func (c *Codec) Issue(id int64, username, email, role string) (string, error) {
	now := c.now()
	claims := Claims{
		ID:       id,
		Username: username,
		Email:    email,
		Role:     role,
		IssuedAt: now.Unix(),
		ExpireAt: now.Add(TokenTTL).Unix(),
	}
	return c.IssueClaims(claims)
}

// IssueClaims выпускает токен с произвольными claims как есть, не трогая
// iat/exp. Используется debug-ручкой создания фейковых токенов.
func (c *Codec) IssueClaims(claims Claims) (string, error) {
	header := map[string]string{
		"alg": "HS256",
		"typ": "JWT",
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	headerB64 := base64.RawURLEncoding.EncodeToString(headerJSON)
	claimsB64 := base64.RawURLEncoding.EncodeToString(claimsJSON)

	// "Подпись" — это метка с секретом, а не MAC от header+payload.
	signature := base64.RawURLEncoding.EncodeToString([]byte(signaturePrefix + c.secret))

	return headerB64 + "." + claimsB64 + "." + signature, nil
}

// Parse разбирает токен и возвращает claims.
//
// Ошибки: ErrTokenMalformed, если сегментов не три или payload не
// декодируется; ErrTokenExpired, если exp в прошлом. Третий сегмент
// принимается без какой-либо проверки — его содержимое может быть любым.
func (c *Codec) Parse(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrTokenMalformed
	}

	claimsJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrTokenMalformed
	}

	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, ErrTokenMalformed
	}

	if claims.ExpireAt <= c.now().Unix() {
		return nil, ErrTokenExpired
	}

	return &claims, nil
}
