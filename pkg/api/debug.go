package api

import "time"

// ForgeTokenRequest — запрос debug-ручки на выпуск токена с произвольными
// claims. Существует только для учебных демонстраций подделки.
type ForgeTokenRequest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expires_in,omitempty"` // секунды; 0 — стандартные 24h
}

// TokenResponse — ответ с выпущенным токеном
type TokenResponse struct {
	Token string `json:"token"`
}

// AuditEvent — одна запись аудита: кто, что и над кем сделал
type AuditEvent struct {
	ID             string    `json:"id"`
	Time           time.Time `json:"time"`
	Action         string    `json:"action"`
	CallerID       int64     `json:"caller_id"`
	CallerUsername string    `json:"caller_username"`
	CallerRole     string    `json:"caller_role"`
	TargetID       int64     `json:"target_id,omitempty"`
	Detail         string    `json:"detail,omitempty"`
}

// AuditResponse — список записей аудита
type AuditResponse struct {
	Events []AuditEvent `json:"events"`
}
