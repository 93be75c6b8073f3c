package api

import "time"

// User — публичное представление пользователя (без credential).
// Профиль отдается целиком, включая salary и ssn: раскрытие чувствительных
// полей любому аутентифицированному вызывающему — часть учебного сценария.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile — персональные данные пользователя
type Profile struct {
	FullName   string  `json:"fullName"`
	Phone      string  `json:"phone"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary,omitempty"` // sensitive
	SSN        string  `json:"ssn,omitempty"`    // sensitive
}

// UpdateProfileRequest — частичное обновление профиля.
// Отсутствующие поля не меняются.
type UpdateProfileRequest struct {
	FullName   *string  `json:"fullName,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Department *string  `json:"department,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	SSN        *string  `json:"ssn,omitempty"`
}

// ChangeRoleRequest — запрос на смену роли
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRoleResponse — результат смены роли.
// NewToken заполняется, только если вызывающий сменил роль самому себе:
// сервер тут же перевыпускает токен с новой ролью.
type ChangeRoleResponse struct {
	User     User   `json:"user"`
	NewToken string `json:"new_token,omitempty"`
}

// MessageResponse — простой ответ с текстом
type MessageResponse struct {
	Message string `json:"message"`
}
