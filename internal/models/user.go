package models

import "time"

// User представляет учетную запись в хранилище.
// Password хранится в открытом виде и сравнивается побайтово при логине —
// это намеренная часть учебного дизайна, а не недосмотр.
type User struct {
	ID        int64     `json:"id"`         // последовательный идентификатор, назначается при сидировании
	Username  string    `json:"username"`   // уникальный username для логина
	Email     string    `json:"email"`      // контактный email
	Password  string    `json:"password"`   // plaintext credential, никогда не отдается наружу
	Role      string    `json:"role"`       // "admin", "user" или произвольный тег
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"` // неизменяемое время создания
}

// Profile содержит персональные данные, включая чувствительные поля.
type Profile struct {
	FullName   string  `json:"fullName"`
	Phone      string  `json:"phone"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary,omitempty"` // sensitive
	SSN        string  `json:"ssn,omitempty"`    // sensitive
}

// PublicUser — представление пользователя без credential.
// Именно оно уходит в ответы API и в client-side session storage.
// Профиль с salary и ssn при этом отдается целиком: утечка чувствительных
// полей входит в набор демонстрируемых уязвимостей.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Public возвращает копию записи без пароля.
func (u *User) Public() PublicUser {
	pub := PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.Profile != nil {
		p := *u.Profile
		pub.Profile = &p
	}
	return pub
}

// ProfilePatch описывает частичное обновление профиля.
// nil-поля не трогают существующие значения (merge-семантика).
type ProfilePatch struct {
	FullName   *string  `json:"fullName,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Department *string  `json:"department,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	SSN        *string  `json:"ssn,omitempty"`
}

// Apply накладывает patch на профиль. Профиль создается, если его не было.
func (p ProfilePatch) Apply(profile *Profile) *Profile {
	if profile == nil {
		profile = &Profile{}
	}
	if p.FullName != nil {
		profile.FullName = *p.FullName
	}
	if p.Phone != nil {
		profile.Phone = *p.Phone
	}
	if p.Department != nil {
		profile.Department = *p.Department
	}
	if p.Salary != nil {
		profile.Salary = *p.Salary
	}
	if p.SSN != nil {
		profile.SSN = *p.SSN
	}
	return profile
}
