package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vulnlab/accesslab/internal/models"
	"github.com/vulnlab/accesslab/internal/server/storage"
)

// Compile-time check that Store implements storage.UserStore
var _ storage.UserStore = (*Store)(nil)

const userColumns = "id, username, email, password, role, full_name, phone, department, salary, ssn, created_at"

// Authenticate ищет запись с точным совпадением username и password.
// Сравнение пароля выполняется прямо в запросе, открытым текстом —
// ровно та схема, которую демонстрирует лаборатория.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? AND password = ?`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, username, password))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	return user, nil
}

// GetByID retrieves user by ID
func (s *Store) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// List returns all users in insertion order
func (s *Store) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var users []*models.User
	for rows.Next() {
		user, err := s.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return users, nil
}

// UpdateProfile накладывает patch на профиль записи
func (s *Store) UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) (*models.User, error) {
	// Merge выполняем в Go: читаем запись, применяем patch, пишем обратно.
	// Для однопользовательского стенда гонки здесь не проблема.
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Profile = patch.Apply(user.Profile)

	query := `
		UPDATE users
		SET full_name = ?, phone = ?, department = ?, salary = ?, ssn = ?
		WHERE id = ?
	`

	_, err = s.db.ExecContext(ctx, query,
		user.Profile.FullName,
		user.Profile.Phone,
		user.Profile.Department,
		nullFloat(user.Profile.Salary),
		nullString(user.Profile.SSN),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

// Delete удаляет запись по id
func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// SetRole перезаписывает роль записи
func (s *Store) SetRole(ctx context.Context, id int64, role string) (*models.User, error) {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET role = ? WHERE id = ?`, role, id)
	if err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, storage.ErrUserNotFound
	}

	return s.GetByID(ctx, id)
}

// Count returns current number of users
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// Reset заменяет всю таблицу seed-набором
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	return s.insertSeed(ctx)
}

// insertSeed вставляет фиксированный стартовый набор
func (s *Store) insertSeed(ctx context.Context) error {
	query := `
		INSERT INTO users (id, username, email, password, role, full_name, phone, department, salary, ssn, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, u := range storage.Seed() {
		_, err := s.db.ExecContext(ctx, query,
			u.ID,
			u.Username,
			u.Email,
			u.Password,
			u.Role,
			u.Profile.FullName,
			u.Profile.Phone,
			u.Profile.Department,
			nullFloat(u.Profile.Salary),
			nullString(u.Profile.SSN),
			u.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert seed user %q: %w", u.Username, err)
		}
	}

	return nil
}

// scanner покрывает *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanUser читает одну запись; NULL-профиль превращается в nil Profile
func (s *Store) scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	var (
		fullName   sql.NullString
		phone      sql.NullString
		department sql.NullString
		salary     sql.NullFloat64
		ssn        sql.NullString
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
		&fullName,
		&phone,
		&department,
		&salary,
		&ssn,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fullName.Valid || phone.Valid || department.Valid || salary.Valid || ssn.Valid {
		user.Profile = &models.Profile{
			FullName:   fullName.String,
			Phone:      phone.String,
			Department: department.String,
			Salary:     salary.Float64,
			SSN:        ssn.String,
		}
	}

	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}
