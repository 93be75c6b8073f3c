package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль открытым текстом
}

// LoginResponse представляет ответ на успешный логин
type LoginResponse struct {
	Token string `json:"token"` // сессионный токен (header.payload.signature)
	User  User   `json:"user"`  // публичное представление пользователя
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
