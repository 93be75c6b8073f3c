package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnlab/accesslab/internal/models"
	"github.com/vulnlab/accesslab/internal/server/storage"
)

func TestAuthenticate(t *testing.T) {
	s := New()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantID   int64
	}{
		{"admin ok", "admin", "admin123", nil, 1},
		{"user ok", "john", "user123", nil, 2},
		{"wrong password", "admin", "admin124", storage.ErrInvalidCredentials, 0},
		{"wrong username", "admin2", "admin123", storage.ErrInvalidCredentials, 0},
		{"swapped fields", "admin123", "admin", storage.ErrInvalidCredentials, 0},
		{"case sensitive", "Admin", "admin123", storage.ErrInvalidCredentials, 0},
		{"empty credentials", "", "", storage.ErrInvalidCredentials, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := s.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, u.ID)
		})
	}
}

func TestGetByID(t *testing.T) {
	s := New()
	ctx := context.Background()

	u, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "jane", u.Username)
	assert.Equal(t, "456-78-9012", u.Profile.SSN)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	u, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	u.Role = "admin"
	u.Profile.Salary = 1

	again, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "user", again.Role)
	assert.Equal(t, float64(65000), again.Profile.Salary)
}

func TestList_InsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)

	var ids []int64
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)
}

func TestUpdateProfile_Merge(t *testing.T) {
	s := New()
	ctx := context.Background()

	dept := "Engineering"
	u, err := s.UpdateProfile(ctx, 4, models.ProfilePatch{Department: &dept})
	require.NoError(t, err)

	assert.Equal(t, "Engineering", u.Profile.Department)
	// Нетронутые поля остаются
	assert.Equal(t, "Bob Wilson", u.Profile.FullName)
	assert.Equal(t, float64(60000), u.Profile.Salary)

	_, err = s.UpdateProfile(ctx, 99, models.ProfilePatch{Department: &dept})
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 2))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = s.GetByID(ctx, 2)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Повторное удаление — NotFound, коллекция не трогается
	assert.ErrorIs(t, s.Delete(ctx, 2), storage.ErrUserNotFound)
	count, _ = s.Count(ctx)
	assert.Equal(t, 3, count)
}

func TestSetRole(t *testing.T) {
	s := New()
	ctx := context.Background()

	u, err := s.SetRole(ctx, 2, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)

	// Роль — открытое множество, произвольный тег допустим
	u, err = s.SetRole(ctx, 3, "auditor")
	require.NoError(t, err)
	assert.Equal(t, "auditor", u.Role)

	_, err = s.SetRole(ctx, 99, "admin")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestReset_RestoresSeedSnapshot(t *testing.T) {
	s := New()
	ctx := context.Background()

	name := "Mallory"
	require.NoError(t, s.Delete(ctx, 4))
	_, err := s.SetRole(ctx, 2, "admin")
	require.NoError(t, err)
	_, err = s.UpdateProfile(ctx, 3, models.ProfilePatch{FullName: &name})
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)

	assert.Equal(t, int64(4), users[3].ID)
	assert.Equal(t, "user", users[1].Role)
	assert.Equal(t, "Jane Smith", users[2].Profile.FullName)
}
